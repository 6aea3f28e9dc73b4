package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithTimestep(0.25))
	if cfg.Timestep != 0.25 {
		t.Fatalf("timestep = %v, want 0.25", cfg.Timestep)
	}
	if got := cfg.SampleRate(); got != 4 {
		t.Fatalf("sample rate = %v, want 4", got)
	}
}

func TestWithSampleRate(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(50))
	if !NearlyEqual(cfg.Timestep, 0.02, 1e-15) {
		t.Fatalf("timestep = %v, want 0.02", cfg.Timestep)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithTimestep(0), WithTimestep(-1), WithSampleRate(0), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
