// Package components holds the built-in course components.
//
// Every component is enabled or disabled per course by the host; this
// package only describes the components and the navigation they contribute.
//
//	reg, err := components.Registry()
//	if err != nil {
//	    return err
//	}
//	h := host.New(reg, instanceSettings, courseSettings, course)
//
// Keys are derived from the type names: ForumComponent has key "forum",
// LessonPlanComponent has key "lesson_plan".
//
// Sidebar titles and weights can be overridden per scope with the "title"
// and "weight" options. A host context implementing PathPrefixer scopes
// every sidebar path, typically to a course.
package components
