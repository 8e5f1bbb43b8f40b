package domain

import "testing"

func TestDecide_NoSession(t *testing.T) {
	d := Decide(LevelWorker, nil, "/database")
	if d.State != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", d.State)
	}
	if d.RedirectTo != LoginRoute || d.Redirect == nil || d.Redirect.From != "/database" {
		t.Fatalf("unexpected redirect: %+v", d)
	}
	if got := d.Location(); got != "/login?from=%2Fdatabase" {
		t.Fatalf("unexpected location %q", got)
	}
}

func TestDecide_Table(t *testing.T) {
	ids := map[AccessLevel]*Identity{
		LevelHandler: {ID: "25hd001", AccessLevel: LevelHandler},
		LevelWorker:  {ID: "25wk001", AccessLevel: LevelWorker},
		LevelMember:  {ID: "25mb001", AccessLevel: LevelMember},
	}
	cases := []struct {
		required AccessLevel
		actual   AccessLevel
		allow    bool
	}{
		{LevelHandler, LevelHandler, true},
		{LevelHandler, LevelWorker, false},
		{LevelHandler, LevelMember, false},
		{LevelWorker, LevelHandler, true},
		{LevelWorker, LevelWorker, true},
		{LevelWorker, LevelMember, false},
		{LevelMember, LevelHandler, true},
		{LevelMember, LevelWorker, true},
		{LevelMember, LevelMember, true},
		{"", LevelMember, true},
	}
	for _, tc := range cases {
		d := Decide(tc.required, ids[tc.actual], "/x")
		if d.Allowed() != tc.allow {
			t.Errorf("R=%q A=%q: allowed=%v, want %v", tc.required, tc.actual, d.Allowed(), tc.allow)
			continue
		}
		if tc.allow {
			if d.RedirectTo != "" || d.Identity != ids[tc.actual] {
				t.Errorf("R=%q A=%q: unexpected allow decision %+v", tc.required, tc.actual, d)
			}
			continue
		}
		if d.State != StateUnauthorized || d.RedirectTo != LandingRoute {
			t.Errorf("R=%q A=%q: unexpected deny decision %+v", tc.required, tc.actual, d)
		}
		if !d.Redirect.AccessDenied || d.Redirect.RequiredLevel != tc.required {
			t.Errorf("R=%q A=%q: missing denial state %+v", tc.required, tc.actual, d.Redirect)
		}
	}
}

func TestDecision_Location_Denied(t *testing.T) {
	d := Decide(LevelHandler, &Identity{AccessLevel: LevelMember}, "/settings")
	if got := d.Location(); got != "/dashboard?accessDenied=true&requiredLevel=handler" {
		t.Fatalf("unexpected location %q", got)
	}
	if (Decision{State: StateAuthorized}).Location() != "" {
		t.Fatalf("allow decisions have no location")
	}
}

func TestDecision_ZeroValueDenies(t *testing.T) {
	var d Decision
	if d.Allowed() {
		t.Fatalf("zero decision must not allow")
	}
}
