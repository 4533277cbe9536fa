package problemfile

// YAMLProblem is the on-disk shape of a problem file:
//
//	objective:
//	  sense: maximize
//	  x1: 3
//	  x2: 2
//	constraints:
//	  - {x1: 1, x2: 1, op: "<=", rhs: 4}
type YAMLProblem struct {
	Name        string           `yaml:"name"`
	Objective   *YAMLObjective   `yaml:"objective"`
	Constraints []YAMLConstraint `yaml:"constraints"`
}

type YAMLObjective struct {
	Sense string  `yaml:"sense"`
	X1    float64 `yaml:"x1"`
	X2    float64 `yaml:"x2"`
}

type YAMLConstraint struct {
	X1  float64 `yaml:"x1"`
	X2  float64 `yaml:"x2"`
	Op  string  `yaml:"op"`
	RHS float64 `yaml:"rhs"`
}
