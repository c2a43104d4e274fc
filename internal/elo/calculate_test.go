package elo

import (
	"math"
	"testing"
)

func TestExpected(t *testing.T) {
	tests := []struct {
		name string
		ra   float64
		rb   float64
		want float64
	}{
		{
			name: "equal ratings",
			ra:   1200,
			rb:   1200,
			want: 0.5,
		},
		{
			name: "400 points ahead",
			ra:   1600,
			rb:   1200,
			want: 10.0 / 11.0,
		},
		{
			name: "400 points behind",
			ra:   1200,
			rb:   1600,
			want: 1.0 / 11.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expected(tt.ra, tt.rb); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name       string
		winner     float64
		loser      float64
		wantWinner float64
		wantLoser  float64
	}{
		{
			name:       "equal ratings",
			winner:     1200,
			loser:      1200,
			wantWinner: 1216,
			wantLoser:  1184,
		},
		{
			name:       "favorite wins",
			winner:     1600,
			loser:      1200,
			wantWinner: 1600 + 32.0/11.0,
			wantLoser:  1200 - 32.0/11.0,
		},
		{
			name:       "underdog wins",
			winner:     1200,
			loser:      1600,
			wantWinner: 1200 + 320.0/11.0,
			wantLoser:  1600 - 320.0/11.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotWinner, gotLoser := Update(tt.winner, tt.loser)
			if math.Abs(gotWinner-tt.wantWinner) > 1e-9 {
				t.Errorf("Update() winner = %v, want %v", gotWinner, tt.wantWinner)
			}
			if math.Abs(gotLoser-tt.wantLoser) > 1e-9 {
				t.Errorf("Update() loser = %v, want %v", gotLoser, tt.wantLoser)
			}
		})
	}
}

func TestUpdateZeroSum(t *testing.T) {
	ratings := []struct{ w, l float64 }{
		{1200, 1200},
		{1534.2, 1189.7},
		{903, 2411},
	}
	for _, r := range ratings {
		w, l := Update(r.w, r.l)
		gain := w - r.w
		loss := r.l - l
		if math.Abs(gain-loss) > 1e-9 {
			t.Errorf("Update(%v, %v): gain %v != loss %v", r.w, r.l, gain, loss)
		}
		if gain <= 0 {
			t.Errorf("Update(%v, %v): winner gained %v, want > 0", r.w, r.l, gain)
		}
	}
}
