// Command usdx-tool inspects, validates and repairs Ultrastar song
// files and libraries.
//
// Usage:
//
//	usdx-tool <command> [flags] [args]
//
// Commands:
//
//	info      print the header and detected version of song files
//	check     validate every song under a library root
//	tree      print a library as a directory tree
//	export    export a library to CSV or JSON
//	reorder   rewrite song headers in canonical attribute order
//	migrate   convert songs to another format version
//	stamp     write song attributes into the audio file's tags
//	verify    compare song attributes against the audio file's tags
//	settings  show or write the tool settings
//	version   print version information
//
// Defaults come from a JSON settings file overridden by USDX_*
// environment variables, see Settings. Reports go to stdout,
// diagnostics go to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disiqueira/gotree/v3"

	"github.com/randompersona1/ultrastar"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	settings, err := loadSettings()
	if err != nil {
		fail("loading settings: %v", err)
	}
	if settings.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "info":
		runInfo(settings, args)
	case "check":
		runCheck(settings, args)
	case "tree":
		runTree(settings, args)
	case "export":
		runExport(settings, args)
	case "reorder":
		runReorder(settings, args)
	case "migrate":
		runMigrate(settings, args)
	case "stamp":
		runStamp(settings, args)
	case "verify":
		runVerify(settings, args)
	case "settings":
		runSettings(settings, args)
	case "version":
		runVersion()
	case "help", "-h", "--help":
		usage()
	default:
		fail("unknown command %q, run usdx-tool help", cmd)
	}
}

func usage() {
	fmt.Println("Usage: usdx-tool <command> [flags] [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  info      print the header and detected version of song files")
	fmt.Println("  check     validate every song under a library root")
	fmt.Println("  tree      print a library as a directory tree")
	fmt.Println("  export    export a library to CSV or JSON")
	fmt.Println("  reorder   rewrite song headers in canonical attribute order")
	fmt.Println("  migrate   convert songs to another format version")
	fmt.Println("  stamp     write song attributes into the audio file's tags")
	fmt.Println("  verify    compare song attributes against the audio file's tags")
	fmt.Println("  settings  show or write the tool settings")
	fmt.Println("  version   print version information")
	fmt.Println()
	fmt.Println("Run usdx-tool <command> -h for command flags.")
	fmt.Println("Defaults come from the settings file and USDX_* environment variables.")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// libraryRoot resolves the positional root argument, falling back to
// the USDX_LIBRARY setting.
func libraryRoot(fs *flag.FlagSet, settings *Settings) string {
	if fs.NArg() > 0 {
		return fs.Arg(0)
	}
	return settings.Library
}

func openOptions(strict bool) []ultrastar.Option {
	var opts []ultrastar.Option
	if strict {
		opts = append(opts, ultrastar.WithStrictParsing())
	}
	return opts
}

func flushOptions(settings *Settings, crlf bool, backup string) []ultrastar.FlushOption {
	var opts []ultrastar.FlushOption
	if crlf || settings.CRLF {
		opts = append(opts, ultrastar.WithCRLF())
	}
	if backup == "" {
		backup = settings.BackupSuffix
	}
	if backup != "" {
		opts = append(opts, ultrastar.WithBackup(backup))
	}
	return opts
}

func runInfo(settings *Settings, args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	strict := fs.Bool("strict", settings.Strict, "fail on header oddities instead of warning")
	fs.Parse(args)
	if fs.NArg() == 0 {
		fail("usage: usdx-tool info <song.txt ...>")
	}

	failed := 0
	for i, path := range fs.Args() {
		if i > 0 {
			fmt.Println()
		}
		song, err := ultrastar.Open(path, openOptions(*strict)...)
		if err != nil {
			slog.Warn("skipping song", "path", path, "error", err)
			failed++
			continue
		}
		printSong(song)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func printSong(song *ultrastar.Song) {
	fmt.Println(song.DisplayName())
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("File:    %s\n", song.Path)
	fmt.Printf("Version: %s\n", song.Version())
	fmt.Printf("Duet:    %v\n", song.IsDuet())
	fmt.Printf("Body:    %d lines\n", len(song.Body()))

	fmt.Println("\nAttributes:")
	for key, value := range song.Attributes() {
		fmt.Printf("  #%s:%s\n", key, value)
	}

	if len(song.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range song.Warnings {
			fmt.Printf("  • %s\n", w)
		}
	}
}

func runCheck(settings *Settings, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	strict := fs.Bool("strict", settings.Strict, "fail on header oddities instead of warning")
	fs.Parse(args)

	root := libraryRoot(fs, settings)
	lib, err := ultrastar.LoadLibrary(root, openOptions(*strict)...)
	if err != nil {
		fail("%v", err)
	}
	slog.Debug("library loaded", "root", lib.Root, "songs", lib.Len(), "issues", len(lib.Issues))

	results, err := lib.CheckAll(context.Background())
	if err != nil {
		fail("%v", err)
	}

	clean := 0
	for _, res := range results {
		if len(res.Findings) == 0 {
			clean++
			continue
		}
		fmt.Printf("✗ %s\n", res.Song.DisplayName())
		fmt.Printf("  %s\n", res.Song.Path)
		for _, f := range res.Findings {
			fmt.Printf("  • %s\n", f)
		}
		fmt.Println()
	}

	for _, issue := range lib.Issues {
		fmt.Printf("✗ %s\n", issue.Path)
		fmt.Printf("  • failed to load: %v\n", issue.Err)
		fmt.Println()
	}

	fmt.Printf("%d songs checked, %d clean, %d with findings, %d failed to load\n",
		lib.Len(), clean, lib.Len()-clean, len(lib.Issues))

	if clean != lib.Len() || len(lib.Issues) > 0 {
		os.Exit(1)
	}
}

func runTree(settings *Settings, args []string) {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	strict := fs.Bool("strict", settings.Strict, "fail on header oddities instead of warning")
	findings := fs.Bool("findings", false, "validate songs and mark the ones with findings")
	fs.Parse(args)

	root := libraryRoot(fs, settings)
	lib, err := ultrastar.LoadLibrary(root, openOptions(*strict)...)
	if err != nil {
		fail("%v", err)
	}

	flagged := make(map[*ultrastar.Song]bool)
	if *findings {
		results, err := lib.CheckAll(context.Background())
		if err != nil {
			fail("%v", err)
		}
		for _, res := range results {
			if len(res.Findings) > 0 {
				flagged[res.Song] = true
			}
		}
	}

	tree := gotree.New(lib.Root)
	dirs := make(map[string]gotree.Tree)
	var dirNode func(dir string) gotree.Tree
	dirNode = func(dir string) gotree.Tree {
		if dir == "." {
			return tree
		}
		if node, ok := dirs[dir]; ok {
			return node
		}
		node := dirNode(filepath.Dir(dir)).Add(filepath.Base(dir))
		dirs[dir] = node
		return node
	}

	for song := range lib.All() {
		rel, err := filepath.Rel(lib.Root, song.Path)
		if err != nil {
			rel = song.Path
		}
		prefix := ""
		if flagged[song] {
			prefix = "! "
		}
		dirNode(filepath.Dir(rel)).Add(fmt.Sprintf("%s%s (%s)", prefix, song.DisplayName(), song.Version()))
	}

	fmt.Print(tree.Print())

	for _, issue := range lib.Issues {
		slog.Warn("failed to load", "path", issue.Path, "error", issue.Err)
	}
}

func runExport(settings *Settings, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "output file (required)")
	format := fs.String("format", "", "export format, csv or json (default: by file extension)")
	columns := fs.String("columns", "", "comma-separated attribute columns")
	all := fs.Bool("all", false, "export every attribute that appears in the library")
	strict := fs.Bool("strict", settings.Strict, "fail on header oddities instead of warning")
	fs.Parse(args)

	if *out == "" {
		fail("usage: usdx-tool export -out <file> [-format csv|json] [root]")
	}
	f := *format
	if f == "" {
		f = strings.TrimPrefix(filepath.Ext(*out), ".")
	}

	root := libraryRoot(fs, settings)
	lib, err := ultrastar.LoadLibrary(root, openOptions(*strict)...)
	if err != nil {
		fail("%v", err)
	}

	var opts []ultrastar.ExportOption
	switch {
	case *all:
		opts = append(opts, ultrastar.WithAllAttributes())
	case *columns != "":
		opts = append(opts, ultrastar.WithColumns(strings.Split(*columns, ",")...))
	}

	for _, issue := range lib.Issues {
		slog.Warn("failed to load", "path", issue.Path, "error", issue.Err)
	}

	if err := lib.Export(*out, f, opts...); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Exported %d songs to %s\n", lib.Len(), *out)
}

func runReorder(settings *Settings, args []string) {
	fs := flag.NewFlagSet("reorder", flag.ExitOnError)
	crlf := fs.Bool("crlf", false, "write CRLF line endings")
	backup := fs.String("backup", "", "keep a backup of each file with this suffix")
	dryRun := fs.Bool("dry-run", false, "show the new attribute order without writing")
	fs.Parse(args)
	if fs.NArg() == 0 {
		fail("usage: usdx-tool reorder [-dry-run] <song.txt ...>")
	}

	failed := 0
	for _, path := range fs.Args() {
		song, err := ultrastar.Open(path)
		if err != nil {
			slog.Warn("skipping song", "path", path, "error", err)
			failed++
			continue
		}
		before := song.AttributeKeys()
		song.ReorderAuto()
		after := song.AttributeKeys()

		if *dryRun {
			fmt.Printf("%s\n", path)
			fmt.Printf("  before: %s\n", strings.Join(before, " "))
			fmt.Printf("  after:  %s\n", strings.Join(after, " "))
			continue
		}
		if err := song.Flush(flushOptions(settings, *crlf, *backup)...); err != nil {
			slog.Warn("flush failed", "path", path, "error", err)
			failed++
			continue
		}
		fmt.Printf("✓ %s\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runMigrate(settings *Settings, args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	to := fs.String("to", ultrastar.LatestVersion().String(), "target format version")
	crlf := fs.Bool("crlf", false, "write CRLF line endings")
	backup := fs.String("backup", "", "keep a backup of each file with this suffix")
	fs.Parse(args)
	if fs.NArg() == 0 {
		fail("usage: usdx-tool migrate [-to <version>] <song.txt ...>")
	}

	target, err := ultrastar.ParseFormatVersion(*to)
	if err != nil {
		fail("%v", err)
	}

	failed := 0
	for _, path := range fs.Args() {
		song, err := ultrastar.Open(path)
		if err != nil {
			slog.Warn("skipping song", "path", path, "error", err)
			failed++
			continue
		}
		from := song.Version()
		if err := song.MigrateVersion(target); err != nil {
			slog.Warn("migration failed", "path", path, "error", err)
			failed++
			continue
		}
		if err := song.Flush(flushOptions(settings, *crlf, *backup)...); err != nil {
			slog.Warn("flush failed", "path", path, "error", err)
			failed++
			continue
		}
		fmt.Printf("✓ %s: %s → %s\n", path, from, target)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runStamp(settings *Settings, args []string) {
	fs := flag.NewFlagSet("stamp", flag.ExitOnError)
	cover := fs.Bool("cover", false, "embed the COVER image as front-cover artwork")
	maxEdge := fs.Int("max-edge", settings.MaxCoverEdge, "scale covers down to this edge length in pixels (0 = keep)")
	fs.Parse(args)
	if fs.NArg() == 0 {
		fail("usage: usdx-tool stamp [-cover] <song.txt ...>")
	}

	var opts []ultrastar.StampOption
	if *cover {
		opts = append(opts, ultrastar.WithCover(), ultrastar.WithMaxCoverEdge(*maxEdge))
	}

	failed := 0
	for _, path := range fs.Args() {
		song, err := ultrastar.Open(path)
		if err != nil {
			slog.Warn("skipping song", "path", path, "error", err)
			failed++
			continue
		}
		if err := song.StampMediaTags(opts...); err != nil {
			slog.Warn("stamping failed", "path", path, "error", err)
			failed++
			continue
		}
		fmt.Printf("✓ stamped %s\n", song.DisplayName())
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runVerify(settings *Settings, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		fail("usage: usdx-tool verify <song.txt ...>")
	}

	mismatched, failed := 0, 0
	for _, path := range fs.Args() {
		song, err := ultrastar.Open(path)
		if err != nil {
			slog.Warn("skipping song", "path", path, "error", err)
			failed++
			continue
		}
		findings, err := song.VerifyMediaTags()
		if err != nil {
			slog.Warn("verification failed", "path", path, "error", err)
			failed++
			continue
		}
		if len(findings) == 0 {
			fmt.Printf("✓ %s\n", song.DisplayName())
			continue
		}
		mismatched++
		fmt.Printf("✗ %s\n", song.DisplayName())
		for _, f := range findings {
			fmt.Printf("  • %s\n", f)
		}
	}

	if mismatched > 0 || failed > 0 {
		os.Exit(1)
	}
}

func runSettings(settings *Settings, args []string) {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	initialize := fs.Bool("init", false, "write the effective settings to the settings file")
	fs.Parse(args)

	path := settingsPath()
	if *initialize {
		if path == "" {
			fail("no settings location, set USDX_SETTINGS")
		}
		if err := settings.Save(path); err != nil {
			fail("%v", err)
		}
		fmt.Printf("✓ wrote %s\n", path)
		return
	}

	fmt.Printf("Settings file: %s\n", path)
	fmt.Printf("  library:        %s\n", settings.Library)
	fmt.Printf("  strict:         %v\n", settings.Strict)
	fmt.Printf("  verbose:        %v\n", settings.Verbose)
	fmt.Printf("  crlf:           %v\n", settings.CRLF)
	fmt.Printf("  backup_suffix:  %q\n", settings.BackupSuffix)
	fmt.Printf("  max_cover_edge: %d\n", settings.MaxCoverEdge)
}

func runVersion() {
	info := ultrastar.GetVersionInfo()
	fmt.Printf("usdx-tool %s\n", info.Version)
	fmt.Printf("  commit: %s\n", info.GitCommit)
	fmt.Printf("  built:  %s\n", info.BuildTime)
	fmt.Printf("  go:     %s\n", info.GoVersion)
	fmt.Printf("  format: up to Ultrastar %s\n", ultrastar.LatestVersion())
}
