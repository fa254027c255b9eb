package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "number", in: `{"regFee":49.99}`, want: 49.99},
		{name: "numeric string", in: `{"regFee":"49.99"}`, want: 49.99},
		{name: "integer", in: `{"regFee":20}`, want: 20},
		{name: "null", in: `{"regFee":null}`, want: 0},
		{name: "empty string", in: `{"regFee":""}`, want: 0},
		{name: "garbage", in: `{"regFee":"abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				RegFee FlexFloat `json:"regFee"`
			}
			err := json.Unmarshal([]byte(tt.in), &body)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.RegFee.Float64() != tt.want {
				t.Errorf("got %v, want %v", body.RegFee.Float64(), tt.want)
			}
		})
	}
}
