package models

import "github.com/pkg/errors"

// EmployeeCount - вилка количества сотрудников компании
type EmployeeCount int

const (
	EmployeeCount15   EmployeeCount = 1 // 0-15
	EmployeeCount100  EmployeeCount = 2 // 15-100
	EmployeeCount500  EmployeeCount = 3 // 100-500
	EmployeeCount1000 EmployeeCount = 4 // 500-1000
	EmployeeCountMax  EmployeeCount = 5 // 1000+
)

func (e EmployeeCount) Validate() error {
	if e < EmployeeCount15 || e > EmployeeCountMax {
		return errors.New("не указано количество сотрудников")
	}
	return nil
}

func (e EmployeeCount) String() string {
	switch e {
	case EmployeeCount15:
		return "0-15"
	case EmployeeCount100:
		return "15-100"
	case EmployeeCount500:
		return "100-500"
	case EmployeeCount1000:
		return "500-1000"
	case EmployeeCountMax:
		return "1000+"
	}
	return ""
}

// ResumeGrade - квалификация соискателя
type ResumeGrade int

const (
	GradeIntern ResumeGrade = 1
	GradeJunior ResumeGrade = 2
	GradeMiddle ResumeGrade = 3
	GradeSenior ResumeGrade = 4
	GradeLead   ResumeGrade = 5
)

func (g ResumeGrade) Validate() error {
	if g < GradeIntern || g > GradeLead {
		return errors.New("не указана квалификация")
	}
	return nil
}

func (g ResumeGrade) String() string {
	switch g {
	case GradeIntern:
		return "Стажер"
	case GradeJunior:
		return "Джуниор"
	case GradeMiddle:
		return "Миддл"
	case GradeSenior:
		return "Синьор"
	case GradeLead:
		return "Лид"
	}
	return ""
}

// ResumeStatus - готовность соискателя к работе
type ResumeStatus int

const (
	StatusNotSearch ResumeStatus = 1
	StatusThinking  ResumeStatus = 2
	StatusSearch    ResumeStatus = 3
)

func (s ResumeStatus) Validate() error {
	if s < StatusNotSearch || s > StatusSearch {
		return errors.New("не указана готовность к работе")
	}
	return nil
}

func (s ResumeStatus) String() string {
	switch s {
	case StatusNotSearch:
		return "Не ищу работу"
	case StatusThinking:
		return "Рассматриваю предложения"
	case StatusSearch:
		return "Ищу работу"
	}
	return ""
}
