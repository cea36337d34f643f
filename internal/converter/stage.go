package converter

// Stage is a step of the conversion lifecycle.
type Stage int

const (
	StageIdle Stage = iota
	StageValidating
	StageExtracting
	StageClassifying
	StageFormatting
	StageAssembling
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageIdle:        "idle",
	StageValidating:  "validating",
	StageExtracting:  "extracting",
	StageClassifying: "classifying",
	StageFormatting:  "formatting",
	StageAssembling:  "assembling",
	StageDone:        "done",
	StageFailed:      "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Progress returns how far through the pipeline the stage is, in [0, 1].
// Failed reports 0.
func (s Stage) Progress() float64 {
	switch s {
	case StageFailed, StageIdle:
		return 0
	case StageDone:
		return 1
	}
	return float64(s) / float64(StageDone)
}

// Terminal reports whether no further transition follows s.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}
