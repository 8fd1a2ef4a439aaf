package uri

import "testing"

func TestEscapePath(t *testing.T) {
	cases := map[string]struct {
		Input     string
		EncodeSep bool
		Expect    string
	}{
		"unreserved pass through": {
			Input:  "AZaz09-_.~",
			Expect: "AZaz09-_.~",
		},
		"space": {
			Input:     "hello world",
			EncodeSep: true,
			Expect:    "hello%20world",
		},
		"path separators kept": {
			Input:  "path/to/resource",
			Expect: "path/to/resource",
		},
		"path separators encoded": {
			Input:     "path/to/resource",
			EncodeSep: true,
			Expect:    "path%2Fto%2Fresource",
		},
		"model id colon": {
			Input:  "/model/anthropic.claude-3-5-sonnet-20240620-v1:0/converse",
			Expect: "/model/anthropic.claude-3-5-sonnet-20240620-v1%3A0/converse",
		},
		"already encoded input is encoded again": {
			Input:  "/model/v1%3A0/converse",
			Expect: "/model/v1%253A0/converse",
		},
		"multibyte utf-8": {
			Input:     "a→b",
			EncodeSep: true,
			Expect:    "a%E2%86%92b",
		},
		"reserved punctuation": {
			Input:     "k=v&k2=v2?#@",
			EncodeSep: true,
			Expect:    "k%3Dv%26k2%3Dv2%3F%23%40",
		},
		"uppercase hex digits": {
			Input:     "\x0a\xff",
			EncodeSep: true,
			Expect:    "%0A%FF",
		},
		"empty": {
			Input:  "",
			Expect: "",
		},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			if got := EscapePath(tt.Input, tt.EncodeSep); got != tt.Expect {
				t.Errorf("expect %v, got %v", tt.Expect, got)
			}
		})
	}
}
