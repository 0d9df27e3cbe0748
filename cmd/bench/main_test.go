package main

import "testing"

func TestSummarizeGroupsByFocus(t *testing.T) {
	results := []Result{
		{Name: "Chat: price", Focus: focusRouting, Status: "PASS"},
		{Name: "Chat: news", Focus: focusRouting, Status: "FAIL", Note: "intent=market_research"},
		{Name: "API: health", Focus: focusAPI, Status: "PASS"},
		{Name: "Env: Redis connect", Focus: focusEnv, Status: "SKIP"},
	}
	tally := summarize(results)

	if got := tally[focusRouting]; got.pass != 1 || got.fail != 1 {
		t.Fatalf("routing tally = %+v", got)
	}
	if got := tally[focusAPI]; got.pass != 1 || got.fail != 0 {
		t.Fatalf("api tally = %+v", got)
	}
	if got := tally[focusEnv]; got.skip != 1 {
		t.Fatalf("env tally = %+v", got)
	}
	if _, ok := tally[focusPerf]; ok {
		t.Fatal("perf group should be absent when no perf case ran")
	}
}
