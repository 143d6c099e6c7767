package main

import (
	"testing"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		mode   cliMode
		target startTarget
		msg    string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "version single-dash", args: []string{"-version"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "open post", args: []string{"post", "42"}, mode: cliRun, target: startTarget{PostID: 42}},
		{name: "open comment", args: []string{"comment", "7"}, mode: cliRun, target: startTarget{CommentID: 7}},
		{name: "post without id", args: []string{"post"}, mode: cliInvalid, msg: "missing id after post"},
		{name: "comment bad id", args: []string{"comment", "abc"}, mode: cliInvalid, msg: "invalid comment id: abc"},
		{name: "post negative id", args: []string{"post", "-3"}, mode: cliInvalid, msg: "invalid post id: -3"},
		{name: "post extra", args: []string{"post", "1", "x"}, mode: cliInvalid, msg: "unexpected argument: x"},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus"},
		{name: "invalid flags", args: []string{"--bogus", "--pogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus --pogus"},
		{name: "too many args", args: []string{"--version", "extra"}, mode: cliVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, target, msg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if target != tc.target {
				t.Fatalf("target mismatch: got %+v want %+v", target, tc.target)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	settings := map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2024-05-01T10:00:00Z",
	}
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v0.3.1", settings)
	if v != "v0.3.1" || c != "0123456789ab" || d != "2024-05-01T10:00:00Z" {
		t.Fatalf("unexpected build info: %s %s %s", v, c, d)
	}

	v, c, d = resolveVersionInfo("v1.0.0", "abc", "today", "(devel)", settings)
	if v != "v1.0.0" || c != "abc" || d != "today" {
		t.Fatalf("ldflags values must win: %s %s %s", v, c, d)
	}

	v, _, _ = resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	if v != "dev" {
		t.Fatalf("devel module version must not replace dev: %s", v)
	}
}
