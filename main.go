package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/lemmyrant/infra/auth"
	"github.com/CrestNiraj12/lemmyrant/infra/config"
	"github.com/CrestNiraj12/lemmyrant/infra/editor"
	"github.com/CrestNiraj12/lemmyrant/infra/lemmy"
	"github.com/CrestNiraj12/lemmyrant/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

// startTarget is the discussion to open instead of the listing.
type startTarget struct {
	PostID    int64
	CommentID int64
}

func parseCLIArgs(args []string) (cliMode, startTarget, string) {
	if len(args) == 0 {
		return cliRun, startTarget{}, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, startTarget{}, ""
	case "--help", "-h", "help":
		return cliHelp, startTarget{}, ""
	case "post", "comment":
		if len(args) < 2 {
			return cliInvalid, startTarget{}, fmt.Sprintf("missing id after %s", args[0])
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || id <= 0 {
			return cliInvalid, startTarget{}, fmt.Sprintf("invalid %s id: %s", args[0], args[1])
		}
		if len(args) > 2 {
			return cliInvalid, startTarget{}, fmt.Sprintf("unexpected argument: %s", strings.Join(args[2:], " "))
		}
		if args[0] == "post" {
			return cliRun, startTarget{PostID: id}, ""
		}
		return cliRun, startTarget{CommentID: id}, ""
	default:
		return cliInvalid, startTarget{}, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: lemmyrant [--version|-version|-v] [--help|-h] [post <id>] [comment <id>]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, target, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("lemmyrant %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so debug output goes to a file or nowhere.
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "lemmyrant")
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// 2. Build infrastructure.
	hc := lemmy.NewHTTPClient()
	ctx, cancel := context.WithTimeout(context.Background(), lemmy.DefaultTimeout)
	err = auth.EnsureLogin(ctx, hc, cfg.InstanceURL, cfg.TokenPath, auth.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
	})
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "login: %v\n", err)
		os.Exit(1)
	}

	tokenProvider := auth.NewFileTokenProvider(cfg.TokenPath)
	httpClient := lemmy.NewClient(cfg.InstanceURL, tokenProvider, hc)

	// 3. Build services (concrete types satisfy app.* interfaces).
	commentSvc := lemmy.NewCommentService(httpClient)
	postSvc := lemmy.NewPostService(httpClient)
	editorSvc := editor.NewEnvEditor()

	uiState, err := config.LoadUIState(cfg.UIStatePath)
	if err != nil {
		log.Printf("ignoring ui state: %v", err)
	}

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Comments:     commentSvc,
		Posts:        postSvc,
		Editor:       editorSvc,
		Community:    cfg.Community,
		PollInterval: cfg.PollInterval,
		StatePath:    cfg.UIStatePath,
		State:        uiState,
		PostID:       target.PostID,
		CommentID:    target.CommentID,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lemmyrant: %v\n", err)
		os.Exit(1)
	}
}
