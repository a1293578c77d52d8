package session

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/muurk/agri-advisor/internal/advisor"
)

func jaipurResult() *advisor.QueryResult {
	return &advisor.QueryResult{
		Response:    "Pearl millet is well suited.",
		Weather:     advisor.WeatherData{Temperature: 32, Condition: "Sunny", Humidity: 45, WindSpeed: 12, FeelsLike: 35, UVIndex: 8},
		Coordinates: advisor.Coordinates{Lat: 26.9124, Lon: 75.7873},
		Location:    "Jaipur, India",
	}
}

func TestNew_Idle(t *testing.T) {
	s := New()
	if _, ok := s.State().(Idle); !ok {
		t.Errorf("New().State() = %T, want Idle", s.State())
	}
}

func TestBegin_Valid(t *testing.T) {
	s := New()

	input, ticket, err := s.Begin(" Jaipur, India ", "Best crop?")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if ticket == 0 {
		t.Error("Begin() ticket should be non-zero")
	}
	if input.Location != "Jaipur, India" {
		t.Errorf("Location = %q, want trimmed", input.Location)
	}

	loading, ok := s.State().(Loading)
	if !ok {
		t.Fatalf("State() = %T, want Loading", s.State())
	}
	if loading.Input != input {
		t.Errorf("Loading.Input = %+v, want %+v", loading.Input, input)
	}
}

func TestBegin_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		location string
		query    string
	}{
		{"empty location", "", "Best crop?"},
		{"whitespace query", "Jaipur", "   "},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			_, _, err := s.Begin(tt.location, tt.query)

			if !advisor.IsValidationError(err) {
				t.Fatalf("Begin() error = %v, want validation error", err)
			}
			f, ok := s.State().(Failure)
			if !ok {
				t.Fatalf("State() = %T, want Failure", s.State())
			}
			if f.Message() != advisor.MsgValidation {
				t.Errorf("Message() = %q, want %q", f.Message(), advisor.MsgValidation)
			}
		})
	}
}

func TestBegin_InvalidFromSuccessClearsResult(t *testing.T) {
	s := New()
	_, ticket, _ := s.Begin("Jaipur", "Crops?")
	s.Resolve(ticket, jaipurResult(), nil)

	s.Begin("", "Crops?")

	if _, ok := s.State().(Failure); !ok {
		t.Errorf("State() = %T, want Failure", s.State())
	}
}

func TestBegin_BusyWhileLoading(t *testing.T) {
	s := New()
	_, first, _ := s.Begin("Jaipur", "Crops?")

	_, _, err := s.Begin("Delhi", "Wheat?")
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("Begin() error = %v, want ErrBusy", err)
	}

	loading, ok := s.State().(Loading)
	if !ok || loading.Input.Location != "Jaipur" {
		t.Errorf("State() = %+v, want Loading for Jaipur", s.State())
	}
	if s.Ticket() != first {
		t.Errorf("Ticket() = %d, want %d", s.Ticket(), first)
	}
}

func TestResolve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := New()
		_, ticket, _ := s.Begin("Jaipur", "Crops?")
		want := jaipurResult()

		if !s.Resolve(ticket, want, nil) {
			t.Fatal("Resolve() should apply the current ticket")
		}
		success, ok := s.State().(Success)
		if !ok {
			t.Fatalf("State() = %T, want Success", s.State())
		}
		if success.Result != want {
			t.Error("Success should hold exactly the resolved result")
		}
	})

	t.Run("failure", func(t *testing.T) {
		s := New()
		_, ticket, _ := s.Begin("Jaipur", "Crops?")

		s.Resolve(ticket, nil, advisor.NewConnectionError(syscall.ECONNREFUSED))

		f, ok := s.State().(Failure)
		if !ok {
			t.Fatalf("State() = %T, want Failure", s.State())
		}
		if f.Message() != advisor.MsgConnection {
			t.Errorf("Message() = %q, want %q", f.Message(), advisor.MsgConnection)
		}
	})

	t.Run("plain error is unknown", func(t *testing.T) {
		s := New()
		_, ticket, _ := s.Begin("Jaipur", "Crops?")

		s.Resolve(ticket, nil, errors.New("boom"))

		f := s.State().(Failure)
		if f.Err.Type != advisor.ErrTypeUnknown {
			t.Errorf("Err.Type = %v, want %v", f.Err.Type, advisor.ErrTypeUnknown)
		}
	})

	t.Run("nil result is unknown", func(t *testing.T) {
		s := New()
		_, ticket, _ := s.Begin("Jaipur", "Crops?")

		s.Resolve(ticket, nil, nil)

		if _, ok := s.State().(Failure); !ok {
			t.Errorf("State() = %T, want Failure", s.State())
		}
	})
}

func TestResolve_Stale(t *testing.T) {
	s := New()
	_, first, _ := s.Begin("Jaipur", "Crops?")
	s.Resolve(first, nil, advisor.NewTimeoutError(context.DeadlineExceeded))
	s.Dismiss()

	_, second, _ := s.Begin("Delhi", "Wheat?")

	if s.Resolve(first, jaipurResult(), nil) {
		t.Error("Resolve() should ignore a stale ticket")
	}
	if _, ok := s.State().(Loading); !ok {
		t.Errorf("State() = %T, want Loading", s.State())
	}

	if !s.Resolve(second, jaipurResult(), nil) {
		t.Error("Resolve() should apply the current ticket")
	}
	if s.Resolve(second, nil, errors.New("late")) {
		t.Error("Resolve() should not apply twice")
	}
	if _, ok := s.State().(Success); !ok {
		t.Errorf("State() = %T, want Success", s.State())
	}
}

func TestDismiss(t *testing.T) {
	t.Run("failure to idle", func(t *testing.T) {
		s := New()
		s.Begin("", "")
		s.Dismiss()
		if _, ok := s.State().(Idle); !ok {
			t.Errorf("State() = %T, want Idle", s.State())
		}
	})

	t.Run("idle no-op", func(t *testing.T) {
		s := New()
		s.Dismiss()
		if _, ok := s.State().(Idle); !ok {
			t.Errorf("State() = %T, want Idle", s.State())
		}
	})

	t.Run("success no-op", func(t *testing.T) {
		s := New()
		_, ticket, _ := s.Begin("Jaipur", "Crops?")
		s.Resolve(ticket, jaipurResult(), nil)
		s.Dismiss()
		if _, ok := s.State().(Success); !ok {
			t.Errorf("State() = %T, want Success", s.State())
		}
	})

	t.Run("loading no-op", func(t *testing.T) {
		s := New()
		s.Begin("Jaipur", "Crops?")
		s.Dismiss()
		if !IsLoading(s.State()) {
			t.Errorf("State() = %T, want Loading", s.State())
		}
	})
}

func TestStateNames(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle{}, "idle"},
		{Loading{}, "loading"},
		{Success{}, "success"},
		{Failure{}, "failure"},
	}

	for _, tt := range tests {
		if got := tt.s.Name(); got != tt.want {
			t.Errorf("%T.Name() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
