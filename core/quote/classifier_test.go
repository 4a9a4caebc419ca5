package quote

import "testing"

func TestClassifyOrder(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want Family
	}{
		{"explicit chase", Request{Product: "chase_cover"}, FamilyChaseCover},
		{"chase substring", Request{Product: "standard chase"}, FamilyChaseCover},
		{"corbel", Request{Product: "corbel"}, FamilyChaseCover},
		{"implicit chase", Request{Length: floatPtr(40), Width: floatPtr(20), Metal: "stainless"}, FamilyChaseCover},
		{"implicit needs metal", Request{Length: floatPtr(40), Width: floatPtr(20)}, FamilyUnknown},
		{"implicit needs width", Request{Length: floatPtr(40), Metal: "stainless"}, FamilyUnknown},
		{"shroud token", Request{Product: "shroud"}, FamilyShroud},
		{"model name", Request{Product: "monaco"}, FamilyShroud},
		{"model substring", Request{Product: "dynasty deluxe"}, FamilyShroud},
		{"corbel beats model name", Request{Product: "corbel monaco"}, FamilyChaseCover},
		{"corbel beats shroud token", Request{Product: "corbel shroud"}, FamilyChaseCover},
		{"chase beats multi token", Request{Product: "chase flat_top"}, FamilyChaseCover},
		{"flat_top", Request{Product: "flat_top"}, FamilyMultiFlue},
		{"hip", Request{Product: "hip_standard"}, FamilyMultiFlue},
		{"ridge", Request{Product: "ridge"}, FamilyMultiFlue},
		{"unknown", Request{Product: "gazebo"}, FamilyUnknown},
		{"empty", Request{}, FamilyUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(&tc.req); got != tc.want {
				t.Errorf("Classify(%+v) = %s, want %s", tc.req, got, tc.want)
			}
		})
	}
}

func TestShroudAddOnMatches(t *testing.T) {
	if !ShroudAddOnMatches(&Request{Product: "corbel dynasty"}) {
		t.Error("corbel+model should carry a shroud add-on signal")
	}
	if !ShroudAddOnMatches(&Request{Product: "chase shroud"}) {
		t.Error("chase+shroud token should carry a shroud add-on signal")
	}
	if ShroudAddOnMatches(&Request{Product: "chase_cover"}) {
		t.Error("plain chase cover should not carry a shroud signal")
	}
}

func TestShroudModelToken(t *testing.T) {
	if got := ShroudModelToken(&Request{Model: " Dynasty "}); got != "dynasty" {
		t.Errorf("explicit model: got %q", got)
	}
	if got := ShroudModelToken(&Request{Product: "corbel monaco"}); got != "monaco" {
		t.Errorf("embedded model: got %q", got)
	}
}
