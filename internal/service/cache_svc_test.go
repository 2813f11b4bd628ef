package service

import "testing"

func TestAnalysisKey(t *testing.T) {
	got := analysisKey("UCabc", 10)
	want := "analysis:UCabc:10"
	if got != want {
		t.Errorf("analysisKey = %q, want %q", got, want)
	}
}

func TestCacheService_DisabledIsNoOp(t *testing.T) {
	c := NewCacheService("")
	ctx := t.Context()

	if c.Client() != nil {
		t.Fatal("disabled cache should have nil client")
	}

	data, err := c.GetAnalysis(ctx, "UCabc", 10)
	if err != nil || data != nil {
		t.Errorf("GetAnalysis on disabled cache = (%v, %v), want (nil, nil)", data, err)
	}
	if err := c.SetAnalysis(ctx, "UCabc", 10, map[string]string{"k": "v"}); err != nil {
		t.Errorf("SetAnalysis on disabled cache: %v", err)
	}
	if err := c.InvalidateAnalysis(ctx, "UCabc"); err != nil {
		t.Errorf("InvalidateAnalysis on disabled cache: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on disabled cache: %v", err)
	}
}

func TestCacheService_InvalidURLDisables(t *testing.T) {
	c := NewCacheService("not-a-redis-url")
	if c.Client() != nil {
		t.Error("invalid URL should disable caching, not panic")
	}
}
