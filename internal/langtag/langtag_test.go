package langtag

import "testing"

func TestValidateAccepts(t *testing.T) {
	valid := []string{
		"en",
		"EN",
		"zho",
		"ja",
		"zh-Hans",
		"zh-hans",
		"zh-Hans-CN",
		"en-US",
		"en-us",
		"es-419",
		"sr-Cyrl-RS",
		"fil-PH",
	}
	for _, tag := range valid {
		if !Validate(tag) {
			t.Errorf("Validate(%q) = false, want true", tag)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	invalid := []string{
		"",
		"e",
		"english",
		"en_US",
		"en-",
		"-en",
		"123",
		"en-1234",
		"en-Latn-Latn",
		"en-US-Latn", // region before script
		"invalid-code",
		"zh-Hans-CN-x",
	}
	for _, tag := range invalid {
		if Validate(tag) {
			t.Errorf("Validate(%q) = true, want false", tag)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"ZH-hans-CN":   "zh-Hans-CN",
		"en-us":        "en-US",
		"EN":           "en",
		"sr-cyrl":      "sr-Cyrl",
		"es-419":       "es-419",
		"JA-jp":        "ja-JP",
		"invalid-code": "invalid-code", // pass-through
		"en_US":        "en_US",
		"":             "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	tags := []string{"ZH-hans-CN", "en-us", "DE", "sr-CYRL-rs", "es-419"}
	for _, tag := range tags {
		once := Normalize(tag)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", tag, once, twice)
		}
	}
}

func TestParseSubtags(t *testing.T) {
	tag, ok := Parse("zh-Hans-CN")
	if !ok {
		t.Fatal("expected zh-Hans-CN to parse")
	}
	if tag.Language != "zh" || tag.Script != "Hans" || tag.Region != "CN" {
		t.Fatalf("unexpected subtags: %+v", tag)
	}

	tag, ok = Parse("en-US")
	if !ok {
		t.Fatal("expected en-US to parse")
	}
	if tag.Language != "en" || tag.Script != "" || tag.Region != "US" {
		t.Fatalf("unexpected subtags: %+v", tag)
	}

	if _, ok := Parse("not a tag"); ok {
		t.Fatal("expected parse failure")
	}
}
