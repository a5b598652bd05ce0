package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

func TestGenerationStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.GenerationStatus
		want   bool
	}{
		{
			name:   "valid generating",
			status: types.GenerationStatusGenerating,
			want:   true,
		},
		{
			name:   "valid completed",
			status: types.GenerationStatusCompleted,
			want:   true,
		},
		{
			name:   "valid failed",
			status: types.GenerationStatusFailed,
			want:   true,
		},
		{
			name:   "invalid status",
			status: types.GenerationStatus("pending"),
			want:   false,
		},
		{
			name:   "empty status",
			status: types.GenerationStatus(""),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsValid()).True()
			} else {
				gt.B(t, tt.status.IsValid()).False()
			}
		})
	}
}

func TestGenerationStatus_IsTerminal(t *testing.T) {
	gt.B(t, types.GenerationStatusGenerating.IsTerminal()).False()
	gt.B(t, types.GenerationStatusCompleted.IsTerminal()).True()
	gt.B(t, types.GenerationStatusFailed.IsTerminal()).True()
}

func TestParseGenerationStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.GenerationStatus
		wantErr bool
	}{
		{
			name:    "valid generating",
			input:   "generating",
			want:    types.GenerationStatusGenerating,
			wantErr: false,
		},
		{
			name:    "valid completed",
			input:   "completed",
			want:    types.GenerationStatusCompleted,
			wantErr: false,
		},
		{
			name:    "invalid status",
			input:   "done",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty status",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseGenerationStatus(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestAllGenerationStatuses(t *testing.T) {
	statuses := types.AllGenerationStatuses()
	gt.A(t, statuses).Length(3)

	for _, status := range statuses {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}
}

func TestEmail_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   types.Email
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   types.Email("a@x.com"),
			wantErr: false,
		},
		{
			name:    "empty email",
			email:   types.Email(""),
			wantErr: true,
		},
		{
			name:    "missing local part",
			email:   types.Email("@x.com"),
			wantErr: true,
		},
		{
			name:    "missing domain",
			email:   types.Email("a@"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.email.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
