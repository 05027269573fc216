package profile

import "strings"

// Input is a partial profile payload. Empty strings mean "not provided";
// required-field validation happens at the transport boundary before the
// input reaches the domain.
type Input struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string

	Youtube   string
	Twitter   string
	Facebook  string
	Linkedin  string
	Instagram string
}

// SocialPatch carries the social links to set. Nil fields are untouched.
type SocialPatch struct {
	Youtube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// Patch is the set of fields to apply to a profile document. Nil fields are
// left as stored; a patch never clears a previously set value.
type Patch struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         []string
	Social         SocialPatch
}

// BuildPatch computes the field-level patch for a partial input, applying
// set-if-present semantics independently per field.
func BuildPatch(in Input) Patch {
	p := Patch{
		Company:        setIfPresent(in.Company),
		Website:        setIfPresent(in.Website),
		Location:       setIfPresent(in.Location),
		Bio:            setIfPresent(in.Bio),
		Status:         setIfPresent(in.Status),
		GithubUsername: setIfPresent(in.GithubUsername),
		Social: SocialPatch{
			Youtube:   setIfPresent(in.Youtube),
			Twitter:   setIfPresent(in.Twitter),
			Facebook:  setIfPresent(in.Facebook),
			Linkedin:  setIfPresent(in.Linkedin),
			Instagram: setIfPresent(in.Instagram),
		},
	}
	if in.Skills != "" {
		p.Skills = SplitSkills(in.Skills)
	}
	return p
}

// SplitSkills turns a comma-separated skill string into an ordered list with
// surrounding whitespace trimmed from each piece.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, len(parts))
	for i, part := range parts {
		skills[i] = strings.TrimSpace(part)
	}
	return skills
}

func setIfPresent(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
