package growurl_test

import (
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/growurl"
)

func TestForFund(t *testing.T) {
	cases := []struct {
		name string
		fund string
		url  string
	}{
		{
			name: "drops the fund suffix",
			fund: "HDFC Top 100 Fund",
			url:  "https://groww.in/mutual-funds/hdfc-top-100",
		},
		{
			name: "drops direct and growth markers",
			fund: "Axis Bluechip Fund Direct Growth",
			url:  "https://groww.in/mutual-funds/axis-bluechip",
		},
		{
			name: "replaces ampersand with and",
			fund: "SBI Magnum Midcap L&T Fund",
			url:  "https://groww.in/mutual-funds/sbi-magnum-midcap-landt",
		},
		{
			name: "strips punctuation",
			fund: "Nippon India Small Cap Fund (G)",
			url:  "https://groww.in/mutual-funds/nippon-india-small-cap-g",
		},
		{
			name: "collapses dashes left by dropped words",
			fund: "ICICI Prudential Bluechip Fund - Growth Option",
			url:  "https://groww.in/mutual-funds/icici-prudential-bluechip",
		},
		{
			name: "empty name yields bare base",
			fund: "",
			url:  "https://groww.in/mutual-funds/",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := growurl.ForFund(tc.fund); got != tc.url {
				t.Errorf("ForFund(%q) = %q, expected %q", tc.fund, got, tc.url)
			}
		})
	}
}
