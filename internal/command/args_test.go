package command

import "testing"

func TestParseUserRef(t *testing.T) {
	cases := []struct {
		token string
		want  uint64
		ok    bool
	}{
		{"<@123456789>", 123456789, true},
		{"<@!123456789>", 123456789, true},
		{"123456789", 123456789, true},
		{"<@abc>", 0, false},
		{"<@>", 0, false},
		{"not-a-user", 0, false},
		{"", 0, false},
		{"-5", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseUserRef(tc.token)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseUserRef(%q) = (%d, %v), want (%d, %v)", tc.token, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBindTargetBothForms(t *testing.T) {
	structured := &Input{
		Source:  SourceInteraction,
		Options: map[string]Option{"user": {Str: "42"}, "reason": {Str: "being rude"}},
	}
	freeText := &Input{
		Source: SourceMessage,
		Tokens: []string{"<@42>", "being", "rude"},
	}

	a, err := bindTarget(structured, "ban")
	if err != nil {
		t.Fatalf("structured bind: %v", err)
	}
	b, err := bindTarget(freeText, "ban")
	if err != nil {
		t.Fatalf("free-text bind: %v", err)
	}
	if a != b {
		t.Fatalf("forms disagree: %+v vs %+v", a, b)
	}
	if a.TargetID != "42" || a.Reason != "being rude" {
		t.Fatalf("unexpected binding: %+v", a)
	}
}

func TestBindTargetMissingUser(t *testing.T) {
	_, err := bindTarget(&Input{Source: SourceMessage}, "kick")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	cmdErr, ok := err.(*Error)
	if !ok || cmdErr.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %v", err)
	}
	if cmdErr.Message != "💔 Please specify a user to kick~" {
		t.Fatalf("unexpected message: %q", cmdErr.Message)
	}
}

func TestBindTargetBadMention(t *testing.T) {
	_, err := bindTarget(&Input{Source: SourceMessage, Tokens: []string{"garbage"}}, "ban")
	cmdErr, ok := err.(*Error)
	if !ok || cmdErr.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %v", err)
	}
	if cmdErr.Message != "💔 I couldn't find that user~" {
		t.Fatalf("unexpected message: %q", cmdErr.Message)
	}
}

func TestBindOptionalTargetFallsBack(t *testing.T) {
	cases := []struct {
		name string
		in   *Input
		want string
	}{
		{"structured with user", &Input{Source: SourceInteraction, InvokerID: "me", Options: map[string]Option{"user": {Str: "them"}}}, "them"},
		{"structured without user", &Input{Source: SourceInteraction, InvokerID: "me", Options: map[string]Option{}}, "me"},
		{"free text mention", &Input{Source: SourceMessage, InvokerID: "me", Tokens: []string{"<@77>"}}, "77"},
		{"free text garbage", &Input{Source: SourceMessage, InvokerID: "me", Tokens: []string{"garbage"}}, "me"},
		{"free text empty", &Input{Source: SourceMessage, InvokerID: "me"}, "me"},
	}
	for _, tc := range cases {
		if got := bindOptionalTarget(tc.in); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBindTimeout(t *testing.T) {
	args, err := bindTimeout(&Input{
		Source: SourceMessage,
		Tokens: []string{"<@42>", "30", "spamming", "memes"},
	})
	if err != nil {
		t.Fatalf("bind timeout: %v", err)
	}
	if args.TargetID != "42" || args.Minutes != 30 || args.Reason != "spamming memes" {
		t.Fatalf("unexpected binding: %+v", args)
	}

	if _, err := bindTimeout(&Input{Source: SourceMessage, Tokens: []string{"<@42>"}}); err == nil {
		t.Fatalf("expected usage error for missing minutes")
	}
	if _, err := bindTimeout(&Input{Source: SourceMessage, Tokens: []string{"<@42>", "zero"}}); err == nil {
		t.Fatalf("expected invalid duration error")
	}
	if _, err := bindTimeout(&Input{Source: SourceMessage, Tokens: []string{"<@42>", "-5"}}); err == nil {
		t.Fatalf("expected invalid duration error for negative minutes")
	}
	if _, err := bindTimeout(&Input{
		Source:  SourceInteraction,
		Options: map[string]Option{"user": {Str: "42"}, "minutes": {Int: 0}},
	}); err == nil {
		t.Fatalf("expected invalid duration error in structured form")
	}
}

func TestBindUnban(t *testing.T) {
	args, err := bindUnban(&Input{Source: SourceMessage, Tokens: []string{"123", "sorry"}})
	if err != nil {
		t.Fatalf("bind unban: %v", err)
	}
	if args.TargetID != "123" || args.Reason != "sorry" {
		t.Fatalf("unexpected binding: %+v", args)
	}

	// Unban takes a raw id, not a mention.
	if _, err := bindUnban(&Input{Source: SourceMessage, Tokens: []string{"<@123>"}}); err == nil {
		t.Fatalf("expected validation error for mention form")
	}
	if _, err := bindUnban(&Input{Source: SourceMessage}); err == nil {
		t.Fatalf("expected validation error for missing id")
	}
}

func TestBindCleanCount(t *testing.T) {
	cases := []struct {
		name string
		in   *Input
		want int
	}{
		{"default", &Input{Source: SourceMessage}, 10},
		{"explicit", &Input{Source: SourceMessage, Tokens: []string{"25"}}, 25},
		{"clamped", &Input{Source: SourceMessage, Tokens: []string{"500"}}, 100},
		{"garbage falls back", &Input{Source: SourceMessage, Tokens: []string{"lots"}}, 10},
		{"structured", &Input{Source: SourceInteraction, Options: map[string]Option{"count": {Int: 50}}}, 50},
		{"structured clamped", &Input{Source: SourceInteraction, Options: map[string]Option{"count": {Int: 9999}}}, 100},
	}
	for _, tc := range cases {
		if got := bindCleanCount(tc.in); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPrefixTooLong(t *testing.T) {
	if prefixTooLong("y!") {
		t.Fatalf("short prefix rejected")
	}
	if prefixTooLong("💕💕💕💕💕") {
		t.Fatalf("five runes should pass")
	}
	if !prefixTooLong("toolong") {
		t.Fatalf("long prefix accepted")
	}
}
