package admin

// Step is a phase of one admin media submission. Every submission walks the
// same path: idle → uploading-thumbnail → uploading-primary-asset →
// writing-record → idle, aborting back to idle on the first failure.
type Step string

const (
	StepIdle               Step = "idle"
	StepUploadingThumbnail Step = "uploading-thumbnail"
	StepUploadingPrimary   Step = "uploading-primary-asset"
	StepWritingRecord      Step = "writing-record"
)

// Observer receives each step transition of a submission. Used to surface
// per-step progress to the caller; nil observers are allowed.
type Observer func(Step)

// CanTransitionTo reports whether moving to next is a legal transition.
// Any step may abort back to idle.
func (s Step) CanTransitionTo(next Step) bool {
	if next == StepIdle {
		return true
	}
	switch s {
	case StepIdle:
		return next == StepUploadingThumbnail
	case StepUploadingThumbnail:
		return next == StepUploadingPrimary || next == StepWritingRecord
	case StepUploadingPrimary:
		return next == StepWritingRecord
	case StepWritingRecord:
		return false
	}
	return false
}

// submission tracks the step of one in-flight workflow invocation.
type submission struct {
	step    Step
	observe Observer
}

func newSubmission(observe Observer) *submission {
	return &submission{step: StepIdle, observe: observe}
}

// to advances the submission. Illegal transitions panic: they indicate a
// workflow bug, not a runtime condition.
func (t *submission) to(next Step) {
	if !t.step.CanTransitionTo(next) {
		panic("admin: illegal step transition " + string(t.step) + " -> " + string(next))
	}
	t.step = next
	if t.observe != nil {
		t.observe(next)
	}
}
