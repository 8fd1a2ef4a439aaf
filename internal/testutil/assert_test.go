package testutil

import "testing"

func TestJSONEqual(t *testing.T) {
	cases := map[string]struct {
		Expect      string
		Actual      string
		ExpectError bool
	}{
		"identical": {
			Expect: `{"a":1,"b":[true,null]}`,
			Actual: `{"a":1,"b":[true,null]}`,
		},
		"key order ignored": {
			Expect: `{"a":1,"b":2}`,
			Actual: `{"b":2,"a":1}`,
		},
		"whitespace ignored": {
			Expect: `{"a": 1}`,
			Actual: `{"a":1}`,
		},
		"value mismatch": {
			Expect:      `{"a":1}`,
			Actual:      `{"a":2}`,
			ExpectError: true,
		},
		"invalid actual": {
			Expect:      `{}`,
			Actual:      `{`,
			ExpectError: true,
		},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			err := JSONEqual([]byte(tt.Expect), []byte(tt.Actual))
			if tt.ExpectError && err == nil {
				t.Errorf("expect error, got none")
			}
			if !tt.ExpectError && err != nil {
				t.Errorf("expect no error, got %v", err)
			}
		})
	}
}
