// Package courses holds the static course catalog and picks random
// recommendations for a classified field.
package courses

import (
	"math/rand"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
)

// Course is one recommendable course.
type Course struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DefaultCount is how many courses a recommendation carries by default.
const DefaultCount = 5

var dataScienceCourses = []Course{
	{"Machine Learning Crash Course by Google [Free]", "https://developers.google.com/machine-learning/crash-course"},
	{"Machine Learning A-Z by Udemy", "https://www.udemy.com/course/machinelearning/"},
	{"Machine Learning by Andrew NG", "https://www.coursera.org/learn/machine-learning"},
	{"Data Scientist Master Program of Simplilearn (IBM)", "https://www.simplilearn.com/big-data-and-analytics/senior-data-scientist-masters-program-training"},
	{"Data Science Foundations: Fundamentals by LinkedIn", "https://www.linkedin.com/learning/data-science-foundations-fundamentals-5"},
	{"Data Scientist with Python", "https://www.datacamp.com/tracks/data-scientist-with-python"},
	{"Programming for Data Science with Python", "https://www.udacity.com/course/programming-for-data-science-nanodegree--nd104"},
	{"Programming for Data Science with R", "https://www.udacity.com/course/programming-for-data-science-nanodegree-with-R--nd118"},
	{"Introduction to Data Science", "https://www.udacity.com/course/introduction-to-data-science--cd0017"},
	{"Intro to Machine Learning with TensorFlow", "https://www.udacity.com/course/intro-to-machine-learning-with-tensorflow-nanodegree--nd230"},
}

var webCourses = []Course{
	{"Django Crash course [Free]", "https://youtu.be/e1IyzVyrLSU"},
	{"Python and Django Full Stack Web Developer Bootcamp", "https://www.udemy.com/course/python-and-django-full-stack-web-developer-bootcamp"},
	{"React Crash Course [Free]", "https://youtu.be/Dorf8i6lCuk"},
	{"ReactJS Project Development Training", "https://www.dotnettricks.com/training/masters-program/reactjs-certification-training"},
	{"Full Stack Web Developer - MEAN Stack", "https://www.simplilearn.com/full-stack-web-developer-mean-stack-certification-training"},
	{"Node.js and Express.js [Free]", "https://youtu.be/Oe421EPjeBE"},
	{"Flask: Develop Web Applications in Python", "https://www.educative.io/courses/flask-develop-web-applications-in-python"},
	{"Full Stack Web Developer by Udacity", "https://www.udacity.com/course/full-stack-web-developer-nanodegree--nd0044"},
	{"Front End Web Developer by Udacity", "https://www.udacity.com/course/front-end-web-developer-nanodegree--nd0011"},
	{"Become a React Developer by Udacity", "https://www.udacity.com/course/react-nanodegree--nd019"},
}

var androidCourses = []Course{
	{"Android Development for Beginners [Free]", "https://youtu.be/fis26HvvDII"},
	{"Android App Development Specialization", "https://www.coursera.org/specializations/android-app-development"},
	{"Associate Android Developer Certification", "https://grow.google/androiddev/#?modal_active=none"},
	{"Become an Android Kotlin Developer by Udacity", "https://www.udacity.com/course/android-kotlin-developer-nanodegree--nd940"},
	{"Android Basics by Google", "https://www.udacity.com/course/android-basics-nanodegree-by-google--nd803"},
	{"The Complete Android Developer Course", "https://www.udemy.com/course/complete-android-n-developer-course/"},
	{"Building an Android App with Architecture Components", "https://www.linkedin.com/learning/building-an-android-app-with-architecture-components"},
	{"Android App Development Masterclass using Kotlin", "https://www.udemy.com/course/android-oreo-kotlin-app-masterclass/"},
	{"Flutter & Dart - The Complete Flutter App Development Course", "https://www.udemy.com/course/flutter-dart-the-complete-flutter-app-development-course/"},
	{"Flutter App Development Course [Free]", "https://youtu.be/rZLR5olMR64"},
}

var iosCourses = []Course{
	{"IOS App Development by LinkedIn", "https://www.linkedin.com/learning/subscription/topics/ios"},
	{"iOS & Swift - The Complete iOS App Development Bootcamp", "https://www.udemy.com/course/ios-13-app-development-bootcamp/"},
	{"Become an iOS Developer", "https://www.udacity.com/course/ios-developer-nanodegree--nd003"},
	{"iOS App Development with Swift Specialization", "https://www.coursera.org/specializations/app-development"},
	{"Mobile App Development with Swift", "https://www.edx.org/professional-certificate/curtinx-mobile-app-development-with-swift"},
	{"Swift Course by LinkedIn", "https://www.linkedin.com/learning/subscription/topics/swift-2"},
	{"Objective-C Crash Course for Swift Developers", "https://www.udemy.com/course/objectivec/"},
	{"Learn Swift by Codecademy", "https://www.codecademy.com/learn/learn-swift"},
	{"Swift Tutorial - Full Course for Beginners [Free]", "https://youtu.be/comQ1-x2a1Q"},
	{"Learn Swift Fast [Free]", "https://youtu.be/FcsY1YPBwzQ"},
}

var uiuxCourses = []Course{
	{"Google UX Design Professional Certificate", "https://www.coursera.org/professional-certificates/google-ux-design"},
	{"UI / UX Design Specialization", "https://www.coursera.org/specializations/ui-ux-design"},
	{"The Complete App Design Course - UX, UI and Design Thinking", "https://www.udemy.com/course/the-complete-app-design-course-ux-and-ui-design/"},
	{"UX & Web Design Master Course: Strategy, Design, Development", "https://www.udemy.com/course/ux-web-design-master-course-strategy-design-development/"},
	{"DESIGN RULES: Principles + Practices for Great UI Design", "https://www.udemy.com/course/design-rules/"},
	{"Become a UX Designer by Udacity", "https://www.udacity.com/course/ux-designer-nanodegree--nd578"},
	{"Adobe XD Tutorial: User Experience Design Course [Free]", "https://youtu.be/68w2VwalD5w"},
	{"Adobe XD for Beginners [Free]", "https://youtu.be/WEljsc2jorI"},
	{"Figma Tutorial for UX Design [Free]", "https://youtu.be/FTFaQWZBqQ8"},
	{"Web Design: Becoming a Professional Web Designer", "https://www.linkedin.com/learning/web-design-becoming-a-professional-web-designer"},
}

// byField maps a classified field to its catalog. Fields without a catalog
// (NA, Other) get no recommendations.
var byField = map[heuristic.Field][]Course{
	heuristic.FieldDataScience: dataScienceCourses,
	heuristic.FieldWebDev:      webCourses,
	heuristic.FieldAndroidDev:  androidCourses,
	heuristic.FieldIOSDev:      iosCourses,
	heuristic.FieldUIUXDev:     uiuxCourses,
}

// resumeVideos and interviewVideos are served one random pick at a time
// alongside the report.
var resumeVideos = []string{
	"https://youtu.be/y8YH0Qbu5h4",
	"https://youtu.be/J-4Fv8nq1iA",
	"https://youtu.be/yp693O87GmM",
	"https://youtu.be/UeMmCex9uTU",
	"https://youtu.be/dQ7Q8ZdnuN0",
	"https://youtu.be/HQqqQx5BCFY",
	"https://youtu.be/CLUsplI4xMU",
	"https://youtu.be/pbczsLkv7Cc",
}

var interviewVideos = []string{
	"https://youtu.be/Ji46s5BHdr0",
	"https://youtu.be/seVxXHi2YMs",
	"https://youtu.be/9FgfsLa_SmY",
	"https://youtu.be/2HQmjLu-6RQ",
	"https://youtu.be/DQd_AlIvHUw",
	"https://youtu.be/oVVdezJ0e7w",
	"https://youtu.be/JZK1MZwUyUU",
	"https://youtu.be/CyXLhHQS3KY",
}

// Recommend returns up to n random courses for the field, without repeats.
// n <= 0 falls back to DefaultCount. Fields without a catalog return nil.
func Recommend(field heuristic.Field, n int) []Course {
	catalog := byField[field]
	if len(catalog) == 0 {
		return nil
	}
	if n <= 0 {
		n = DefaultCount
	}
	if n > len(catalog) {
		n = len(catalog)
	}

	shuffled := make([]Course, len(catalog))
	copy(shuffled, catalog)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// ResumeVideo picks one random resume-writing video.
func ResumeVideo() string {
	return resumeVideos[rand.Intn(len(resumeVideos))]
}

// InterviewVideo picks one random interview-prep video.
func InterviewVideo() string {
	return interviewVideos[rand.Intn(len(interviewVideos))]
}
