package models

// RawCourseRecord is one entry of the catalog artifact produced by the
// upstream scraper. Optional fields arrive as JSON null and are modeled as
// pointers; the normalizer fills in display defaults.
type RawCourseRecord struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Subject         string   `json:"subject"`
	SubSubject      *string  `json:"sub_subject"`
	Credits         *float64 `json:"credits"`
	Duration        *string  `json:"duration"`
	Grades          []int    `json:"grades"`
	Prerequisites   *string  `json:"prerequisites"`
	DiplomaCategory *string  `json:"diploma_category"`
	Fees            *string  `json:"fees"`
	Notes           *string  `json:"notes"`
	Description     *string  `json:"description"`
	Tracks          []string `json:"tracks"`
}

// Course is the canonical, normalized course representation. Derived once at
// startup and never mutated afterwards.
type Course struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
	Subject      string   `json:"subject"`
	Grades       []int    `json:"grades"`
	Tracks       []string `json:"tracks"`
	Length       string   `json:"length"`
	Credits      string   `json:"credits"`
	Prerequisite string   `json:"prerequisite"`
	Diploma      string   `json:"diploma"`
	Description  string   `json:"description"`
	Notes        string   `json:"notes"`
	Fees         string   `json:"fees"`
	AP           bool     `json:"ap"`
}

// CourseGroup is one department bucket of a grouped result set.
type CourseGroup struct {
	Department string   `json:"department"`
	Courses    []Course `json:"courses"`
}
