package entity

import "fmt"

// CareerArea is a recommendation target of the personality test. The
// declaration order is also the tie-break order when scores are equal.
type CareerArea int

const (
	CareerAreaUIUXDesigner CareerArea = iota + 1
	CareerAreaBackendDeveloper
	CareerAreaDataScience
	CareerAreaProjectManagement
)

//nolint:gochecknoglobals
var careerAreaNames = map[CareerArea]string{
	CareerAreaUIUXDesigner:      "UI/UX Designer",
	CareerAreaBackendDeveloper:  "Backend Developer",
	CareerAreaDataScience:       "Data Science",
	CareerAreaProjectManagement: "Project Management",
}

// CareerAreas returns all areas in declaration order.
func CareerAreas() []CareerArea {
	return []CareerArea{
		CareerAreaUIUXDesigner,
		CareerAreaBackendDeveloper,
		CareerAreaDataScience,
		CareerAreaProjectManagement,
	}
}

func ParseCareerArea(s string) (CareerArea, error) {
	for area, name := range careerAreaNames {
		if name == s {
			return area, nil
		}
	}

	return 0, fmt.Errorf("unknown career area %q", s)
}

func (a CareerArea) String() string {
	if name, ok := careerAreaNames[a]; ok {
		return name
	}
	return fmt.Sprintf("CareerArea(%d)", int(a))
}

func (a CareerArea) Valid() bool {
	_, ok := careerAreaNames[a]
	return ok
}

func (a CareerArea) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid career area %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *CareerArea) UnmarshalText(text []byte) error {
	area, err := ParseCareerArea(string(text))
	if err != nil {
		return err
	}

	*a = area

	return nil
}
