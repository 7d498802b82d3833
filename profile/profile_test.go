package profile

import "testing"

func TestLookup(t *testing.T) {
	for _, name := range []string{"generic", "Generic", " hogwarts-legacy "} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("lookup %q failed", name)
		}
	}

	if _, ok := Lookup("no-such-game"); ok {
		t.Fatalf("unknown profile must not resolve")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("expected at least two registered profiles, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestGenericClassify(t *testing.T) {
	p, _ := Lookup("generic")

	cases := []struct {
		short string
		want  MapType
		ok    bool
	}{
		{"T_Chair_D", Diffuse, true},
		{"T_Chair_N", Normal, true},
		{"T_Chair_MRO", MRO, true},
		{"T_Chair_SRO", SRO, true},
		{"T_Chair_MROH", MROH, true},
		{"T_Chair_MROA", MRO, true},
		{"T_Chair_SROH", MROH, true},
		{"t_chair_d", Diffuse, true},
		{"T_Chair", Unknown, false},
		{"Banner", Unknown, false},
	}
	for _, tc := range cases {
		got, ok := p.Classify("whatever", tc.short)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%q: got (%v, %v), want (%v, %v)", tc.short, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHogwartsClassify(t *testing.T) {
	p, _ := Lookup("hogwarts-legacy")

	cases := []struct {
		slot string
		want MapType
		ok   bool
	}{
		{"Diffuse Map", Diffuse, true},
		{"Normal Map A", Normal, true},
		{"MRO/SRO Map", SRO, true},
		{"Color Mask", Diffuse, true},
		{"Worn MROH/SROH", MROH, true},
		{"UV Tiling", Unknown, false},
		{"diffuse map", Unknown, false}, // slot names are case sensitive
	}
	for _, tc := range cases {
		got, ok := p.Classify(tc.slot, "T_Anything")
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%q: got (%v, %v), want (%v, %v)", tc.slot, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsDiffuse(t *testing.T) {
	gen, _ := Lookup("generic")
	if !IsDiffuse(gen, "", "T_Floor_D") {
		t.Fatalf("T_Floor_D is a diffuse map")
	}
	if IsDiffuse(gen, "", "T_Floor_N") {
		t.Fatalf("T_Floor_N is not a diffuse map")
	}
}

func TestMapTypeString(t *testing.T) {
	cases := map[MapType]string{
		Diffuse: "diffuse",
		Normal:  "normal",
		SRO:     "sro",
		MRO:     "mro",
		MROH:    "mroh",
		Unknown: "unknown",
	}
	for tt, want := range cases {
		if tt.String() != want {
			t.Fatalf("%d: got %q, want %q", tt, tt.String(), want)
		}
	}
}
