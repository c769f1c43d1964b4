package adapt

// Profile binds a mode id to its instruction template and output shape.
type Profile struct {
	ID    string
	Shape OutputShape
}

const (
	ModeADHD     = "adhd"
	ModeDyslexic = "dyslexic"
	ModeDeaf     = "deaf"
	ModeAutism   = "autism"

	LevelMild     = "mild"
	LevelModerate = "moderate"
	LevelSevere   = "severe"
)

// registry is fixed at build time; every id maps to exactly one profile.
var registry = map[string]Profile{
	ModeADHD:     {ID: ModeADHD, Shape: ShapeChunkedMarkdown},
	ModeDyslexic: {ID: ModeDyslexic, Shape: ShapeChunkedMarkdown},
	ModeDeaf:     {ID: ModeDeaf, Shape: ShapeChunkedMarkdown},
	ModeAutism:   {ID: ModeAutism, Shape: ShapeStructuredLesson},

	LevelMild:     {ID: LevelMild, Shape: ShapePlainText},
	LevelModerate: {ID: LevelModerate, Shape: ShapePlainText},
	LevelSevere:   {ID: LevelSevere, Shape: ShapePlainText},
}

// Resolve returns the profile for a mode id. Total: unknown or empty ids
// fall back to the adhd profile.
func Resolve(mode string) Profile {
	if p, ok := registry[mode]; ok {
		return p
	}
	return registry[ModeADHD]
}

// ResolveLevel returns the profile for a dyslexia reading level. Total:
// unknown or empty levels fall back to moderate.
func ResolveLevel(level string) Profile {
	switch level {
	case LevelMild, LevelModerate, LevelSevere:
		return registry[level]
	}
	return registry[LevelModerate]
}

// Known reports whether the id is one of the registered modes or levels.
func Known(mode string) bool {
	_, ok := registry[mode]
	return ok
}
