package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseFetch,
				Kind:   KindFetchFailed,
				Ref:    "model/asset://props/lantern.glb",
				URL:    "https://assets.example.com/props/lantern.glb",
				Status: 404,
				Detail: "not found",
			},
			contains: []string{"[fetch]", "fetch_failed", "model/asset://props/lantern.glb", "https://assets.example.com/props/lantern.glb", "status 404", "not found"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidContainer,
			},
			contains: []string{"[decode]", "invalid_container"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidContainer,
				Detail: "truncated chunk",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[decode]", "invalid_container", "truncated chunk", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseFetch,
		Kind:  KindFetchFailed,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through Unwrap")
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := FetchFailed("https://a.b/x.glb", 500, nil)

	if !errors.Is(err, &Error{Phase: PhaseFetch, Kind: KindFetchFailed}) {
		t.Error("Is should match on Phase+Kind")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindFetchFailed}) {
		t.Error("Is should not match a different Phase")
	}
	if errors.Is(err, errors.New("other")) {
		t.Error("Is should not match a plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("io failure")
	err := New(PhaseDecode, KindInvalidContainer).
		Ref("avatar/asset://rigs/base.glb").
		URL("https://assets.example.com/rigs/base.glb").
		Detail("chunk %d overruns container", 2).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindInvalidContainer {
		t.Errorf("Phase/Kind = %s/%s", err.Phase, err.Kind)
	}
	if err.Ref != "avatar/asset://rigs/base.glb" {
		t.Errorf("Ref = %q", err.Ref)
	}
	if err.Detail != "chunk 2 overruns container" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("Cause not set")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("unresolvable", func(t *testing.T) {
		err := Unresolvable("model/bogus://x", "bogus://x")
		if err.Phase != PhaseResolve || err.Kind != KindUnresolvable {
			t.Errorf("Phase/Kind = %s/%s", err.Phase, err.Kind)
		}
		if err.Ref != "model/bogus://x" {
			t.Errorf("Ref = %q", err.Ref)
		}
		if err.Value != "bogus://x" {
			t.Errorf("Value = %v", err.Value)
		}
	})

	t.Run("unsupported kind", func(t *testing.T) {
		err := UnsupportedKind("texture")
		if !strings.Contains(err.Error(), `"texture"`) {
			t.Errorf("message %q does not name the kind", err.Error())
		}
	})

	t.Run("fetch failed status", func(t *testing.T) {
		err := FetchFailed("https://a.b/x", 503, nil)
		if err.Status != 503 {
			t.Errorf("Status = %d", err.Status)
		}
	})

	t.Run("missing animation", func(t *testing.T) {
		err := MissingAnimation("emote/asset://wave.glb")
		if err.Kind != KindMissingAnimation {
			t.Errorf("Kind = %s", err.Kind)
		}
	})
}
