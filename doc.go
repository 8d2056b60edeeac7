// Package ultrastar reads, validates, and writes UltraStar Deluxe
// song files.
//
// ultrastar is designed to be the inevitable choice for karaoke song
// management in Go. It parses the #KEY:VALUE attribute header without
// touching the note body, understands every released format version,
// and manages whole song libraries with a unified API that makes
// simple things simple and complex things possible.
//
// # Quick Start
//
// Reading a song file:
//
//	song, err := ultrastar.Open("Bon Jovi - Livin' on a Prayer.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	title, _ := song.GetAttribute("TITLE")
//	artist, _ := song.GetAttribute("ARTIST")
//	fmt.Printf("%s - %s (version %s)\n", artist, title, song.Version())
//
// # The Song File Format
//
// An UltraStar song file opens with a run of attribute lines and
// continues with the note body:
//
//	#TITLE:Livin' on a Prayer
//	#ARTIST:Bon Jovi
//	#MP3:prayer.mp3
//	#BPM:246
//	: 0 4 59 Once
//	: 5 3 59 u~
//	E
//
// ultrastar parses the header into an ordered attribute block and
// carries the note body verbatim, so the notes round-trip byte for
// byte. The header itself comes back normalized: keys match
// case-insensitively and always serialize upper-case, and blank or
// comment lines inside the header are not preserved.
//
// # Format Versions
//
// The VERSION attribute was introduced gradually and many files in the
// wild predate it. Version() detects the format release from the
// header's shape when the attribute is missing, and MigrateVersion
// converts between releases, renaming attributes like MP3 to AUDIO on
// the way to 2.0.0:
//
//	if err := song.MigrateVersion(ultrastar.LatestVersion()); err != nil {
//		log.Fatal(err)
//	}
//
// # Validation
//
// Validation reports findings instead of failing, so one pass collects
// the full diagnostic set:
//
//	for _, finding := range song.Check() {
//		fmt.Println(finding)
//	}
//
// Check covers required attributes, numeric and URL syntax, referenced
// media files, duet consistency, and the note body. ValidateKaraoke
// answers the narrower question "will this play?".
//
// # Libraries
//
// A library is every song file under a root directory:
//
//	lib, err := ultrastar.LoadLibrary("/songs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, song := range lib.Search("artist", "bon jovi") {
//		fmt.Println(song.DisplayName())
//	}
//
//	err = lib.Export("songs.csv", "csv")
//
// Loading is resilient: files that fail to parse land in lib.Issues
// rather than hiding the rest of the collection.
//
// # Media Tags
//
// Songs reference their audio file through the MP3 or AUDIO attribute.
// StampMediaTags writes the song's metadata into that file's embedded
// tags (MP3, FLAC and M4A containers), optionally embedding the COVER
// image, and VerifyMediaTags reports where file tags and song
// attributes disagree:
//
//	err := song.StampMediaTags(ultrastar.WithCover())
//
// # Error Handling
//
// ultrastar distinguishes between fatal errors and warnings:
//
//   - Fatal errors prevent parsing entirely (file not found, unreadable content)
//   - Warnings indicate repaired header problems (duplicate attributes, stray comment lines)
//
// Always check song.Warnings for issues encountered during parsing:
//
//	if len(song.Warnings) > 0 {
//		for _, w := range song.Warnings {
//			log.Printf("Warning: %s", w)
//		}
//	}
//
// WithStrictParsing promotes every warning to a *ParseError for
// pipelines that must not accept repaired input.
//
// # Writing
//
// Flush writes a song back to the file it came from and fails with a
// *FileGoneError when that file has disappeared in the meantime.
// SaveAs writes to a new path. Both are atomic: content lands in a
// temporary file that is renamed into place only after a successful
// sync.
//
//	err := song.Flush(ultrastar.WithBackup(".bak"))
//
// # Concurrency
//
// OpenMany parses files in parallel with bounded concurrency, and
// Library.CheckAll validates a whole collection the same way. Both
// honor context cancellation:
//
//	ctx := context.Background()
//	songs, err := ultrastar.OpenMany(ctx, paths...)
//
// # Go 1.25 Features
//
// ultrastar showcases modern Go patterns:
//
//   - Iterators: Range over attributes and songs with iter.Seq
//   - Structured concurrency: Context-aware operations
//   - New stdlib: slices, maps, cmp packages
//
// # License
//
// See LICENSE file.
package ultrastar
