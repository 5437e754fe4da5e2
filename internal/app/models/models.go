package models

// CourseLevel is the academic level of a course.
type CourseLevel string

const (
	LevelFoundation CourseLevel = "Foundation"
	LevelDiploma    CourseLevel = "Diploma"
	LevelBachelor   CourseLevel = "Bachelor"
	LevelMasters    CourseLevel = "Masters"
	LevelPhD        CourseLevel = "PhD"
)

// Valid reports whether the level is one of the known values.
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelFoundation, LevelDiploma, LevelBachelor, LevelMasters, LevelPhD:
		return true
	}
	return false
}

// InquiryStatus tracks the handling state of a website inquiry.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Valid reports whether the status is one of the known values.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusClosed:
		return true
	}
	return false
}
