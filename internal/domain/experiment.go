package domain

// Experimenter is the person who ran an acquisition
type Experimenter struct {
	Ident       `yaml:",inline"`
	FirstName   string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	MiddleName  string `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	LastName    string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
	UserName    string `json:"user_name,omitempty" yaml:"user_name,omitempty"`
}

func (*Experimenter) EntityType() EntityType { return TypeExperimenter }

// Experiment describes the purpose of an acquisition
type Experiment struct {
	Ident       `yaml:",inline"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
}

func (*Experiment) EntityType() EntityType { return TypeExperiment }
