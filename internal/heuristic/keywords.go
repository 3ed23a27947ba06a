package heuristic

import "regexp"

// Keyword tables. Initialized once at package load, read-only afterwards.

// fieldOrder fixes the evaluation order of the technical fields. Ties in
// keyword counts resolve to the earliest field in this list.
var fieldOrder = []Field{
	FieldDataScience,
	FieldWebDev,
	FieldAndroidDev,
	FieldIOSDev,
	FieldUIUXDev,
}

// fieldKeywords maps each field to its lowercase match keywords.
var fieldKeywords = map[Field][]string{
	FieldDataScience: {
		"tensorflow", "keras", "pytorch", "machine learning",
		"deep learning", "flask", "streamlit",
	},
	FieldWebDev: {
		"react", "django", "node js", "react js", "php", "laravel",
		"magento", "wordpress", "javascript", "angular js", "c#",
		"asp.net", "flask",
	},
	FieldAndroidDev: {
		"android", "android development", "flutter", "kotlin", "xml", "kivy",
	},
	FieldIOSDev: {
		"ios", "ios development", "swift", "cocoa", "cocoa touch", "xcode",
	},
	FieldUIUXDev: {
		"ux", "adobe xd", "figma", "zeplin", "balsamiq", "ui", "prototyping",
		"wireframes", "storyframes", "adobe photoshop", "photoshop",
		"editing", "adobe illustrator", "illustrator", "adobe after effects",
		"after effects", "adobe premier pro", "premier pro", "adobe indesign",
		"indesign", "wireframe", "solid", "grasp", "user research",
		"user experience",
	},
}

// softSkillKeywords only route to FieldNA when no technical field matched.
var softSkillKeywords = []string{
	"english", "communication", "writing", "microsoft office",
	"leadership", "customer management", "social media",
}

// recommendedSkills is the fixed recommendation list per field. Not derived
// from the input skills.
var recommendedSkills = map[Field][]string{
	FieldDataScience: {
		"Data Visualization", "Predictive Analysis", "Statistical Modeling",
		"Data Mining", "Clustering & Classification", "Data Analytics",
		"Quantitative Analysis", "Web Scraping", "ML Algorithms", "Keras",
		"Pytorch", "Probability", "Scikit-learn", "Tensorflow", "Flask",
		"Streamlit",
	},
	FieldWebDev: {
		"React", "Django", "Node JS", "React JS", "php", "laravel",
		"Magento", "wordpress", "Javascript", "Angular JS", "c#", "Flask",
		"SDK",
	},
	FieldAndroidDev: {
		"Android", "Android development", "Flutter", "Kotlin", "XML",
		"Java", "Kivy", "GIT", "SDK", "SQLite",
	},
	FieldIOSDev: {
		"IOS", "IOS Development", "Swift", "Cocoa", "Cocoa Touch", "Xcode",
		"Objective-C", "SQLite", "Plist", "StoreKit", "UI-Kit",
		"AV Foundation", "Auto-Layout",
	},
	FieldUIUXDev: {
		"UI", "User Experience", "Adobe XD", "Figma", "Zeplin", "Balsamiq",
		"Prototyping", "Wireframes", "Storyframes", "Adobe Photoshop",
		"Editing", "Illustrator", "After Effects", "Premier Pro", "Indesign",
		"Wireframe", "Solid", "Grasp", "User Research",
	},
	FieldNA: {
		"No Recommendations",
	},
	FieldOther: {
		"Consider adding more technical skills to your resume",
	},
}

// sectionCheck describes one scored resume section: the word-boundary
// pattern that detects it and the fixed feedback messages.
type sectionCheck struct {
	section  Section
	re       *regexp.Regexp
	positive string
	negative string
}

// sectionChecks is evaluated in this fixed order for every document.
var sectionChecks = []sectionCheck{
	{
		section:  SectionObjective,
		re:       regexp.MustCompile(`(?i)\b(objective|summary)\b`),
		positive: "You have added Objective/Summary",
		negative: "Consider adding a career objective to clarify your intentions.",
	},
	{
		section:  SectionEducation,
		re:       regexp.MustCompile(`(?i)\b(education|school|college)\b`),
		positive: "You have added Education Details",
		negative: "Add education details to showcase your qualifications.",
	},
	{
		section:  SectionExperience,
		re:       regexp.MustCompile(`(?i)\b(experience|employment history)\b`),
		positive: "You have added Experience",
		negative: "Add experience to stand out from the crowd.",
	},
	{
		section:  SectionInternship,
		re:       regexp.MustCompile(`(?i)\binternships?\b`),
		positive: "You have added Internships",
		negative: "Add internships to enhance your profile.",
	},
	{
		section:  SectionSkills,
		re:       regexp.MustCompile(`(?i)\bskills?\b`),
		positive: "You have added Skills",
		negative: "Add skills to better showcase your abilities.",
	},
	{
		section:  SectionHobbies,
		re:       regexp.MustCompile(`(?i)\bhobbies\b`),
		positive: "You have added your Hobbies",
		negative: "Add hobbies to show your personality.",
	},
	{
		section:  SectionAchievements,
		re:       regexp.MustCompile(`(?i)\bachievements?\b`),
		positive: "You have added your Achievements",
		negative: "Add achievements to demonstrate your capabilities.",
	},
	{
		section:  SectionCertifications,
		re:       regexp.MustCompile(`(?i)\bcertifications?\b`),
		positive: "You have added your Certifications",
		negative: "Add certifications to showcase your specializations.",
	},
	{
		section:  SectionProjects,
		re:       regexp.MustCompile(`(?i)\bprojects?\b`),
		positive: "You have added your Projects",
		negative: "Add projects to demonstrate practical experience.",
	},
}

// Weight profiles. Each must sum to exactly 100 across the nine sections;
// sections_test.go enforces this.

// experiencedWeights rewards experience-heavy resumes.
var experiencedWeights = map[Section]int{
	SectionObjective:      6,
	SectionEducation:      10,
	SectionExperience:     20,
	SectionInternship:     4,
	SectionSkills:         10,
	SectionHobbies:        4,
	SectionAchievements:   12,
	SectionCertifications: 14,
	SectionProjects:       20,
}

// entryWeights rewards education and internships for entry-level resumes.
var entryWeights = map[Section]int{
	SectionObjective:      8,
	SectionEducation:      14,
	SectionExperience:     10,
	SectionInternship:     12,
	SectionSkills:         10,
	SectionHobbies:        5,
	SectionAchievements:   11,
	SectionCertifications: 10,
	SectionProjects:       20,
}
