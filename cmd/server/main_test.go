package main

import "testing"

func TestPrintBuildInfo_DefaultsUnsetFields(t *testing.T) {
	buildVersion, buildDate, buildCommit = "", "", ""

	printBuildInfo()

	if buildVersion != "N/A" || buildDate != "N/A" || buildCommit != "N/A" {
		t.Errorf("unset build info = (%q, %q, %q), want all N/A", buildVersion, buildDate, buildCommit)
	}
}

func TestPrintBuildInfo_KeepsLinkedValues(t *testing.T) {
	buildVersion, buildDate, buildCommit = "1.2.3", "2026-08-28", "abc1234"

	printBuildInfo()

	if buildVersion != "1.2.3" {
		t.Errorf("buildVersion = %q, want 1.2.3", buildVersion)
	}
}
