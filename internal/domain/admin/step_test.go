package admin_test

import (
	"testing"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
)

func TestStep_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    admin.Step
		to      admin.Step
		allowed bool
	}{
		{"idle to thumbnail", admin.StepIdle, admin.StepUploadingThumbnail, true},
		{"idle to primary skips a phase", admin.StepIdle, admin.StepUploadingPrimary, false},
		{"idle to record skips phases", admin.StepIdle, admin.StepWritingRecord, false},
		{"thumbnail to primary", admin.StepUploadingThumbnail, admin.StepUploadingPrimary, true},
		{"thumbnail straight to record", admin.StepUploadingThumbnail, admin.StepWritingRecord, true},
		{"primary to record", admin.StepUploadingPrimary, admin.StepWritingRecord, true},
		{"primary back to thumbnail", admin.StepUploadingPrimary, admin.StepUploadingThumbnail, false},
		{"record cannot restart", admin.StepWritingRecord, admin.StepUploadingThumbnail, false},
		{"thumbnail aborts to idle", admin.StepUploadingThumbnail, admin.StepIdle, true},
		{"primary aborts to idle", admin.StepUploadingPrimary, admin.StepIdle, true},
		{"record completes to idle", admin.StepWritingRecord, admin.StepIdle, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}
