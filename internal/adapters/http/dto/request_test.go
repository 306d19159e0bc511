package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/replicator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replicator/internal/domain"
)

func TestBatchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{name: "lower bound", count: 1},
		{name: "upper bound", count: 5},
		{name: "zero", count: 0, wantErr: true},
		{name: "negative", count: -2, wantErr: true},
		{name: "above max", count: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := dto.BatchRequest{Count: tt.count}
			err := req.Validate(5)

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields["count"]; !ok {
				t.Errorf("Fields = %v, want count", verr.Fields)
			}
		})
	}
}
