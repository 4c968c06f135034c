// Command charconv converts text files between the UTF-8 and UTF-16
// Unicode encodings and validates UTF-8 well-formedness.
//
// Usage:
//
//	charconv convert <file> [--from utf8|utf16] [--to utf16|utf8] [--endian le|be] [--out FILE]
//	charconv validate <file>
//	charconv detect <file>
//	charconv version
//
// Files ending in .xz are transparently decompressed on read and
// compressed on write.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/calyptra/charconv/core/charutil"
	apperrors "github.com/calyptra/charconv/core/errors"
	"github.com/calyptra/charconv/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for charconv.
var CLI struct {
	// Global flags
	Verbose bool `short:"v" help:"Enable debug logging"`
	LogJSON bool `name:"log-json" help:"Emit logs in JSON format"`

	Convert  ConvertCmd  `cmd:"" help:"Convert a file between UTF-8 and UTF-16"`
	Validate ValidateCmd `cmd:"" help:"Check that a file is well-formed UTF-8"`
	Detect   DetectCmd   `cmd:"" help:"Report the byte order of a UTF-16 file"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ConvertCmd converts a file between UTF-8 and UTF-16.
type ConvertCmd struct {
	Path   string `arg:"" help:"Input file (.xz is decompressed)" type:"existingfile"`
	From   string `help:"Source encoding" enum:"utf8,utf16" default:"utf8"`
	To     string `help:"Target encoding" enum:"utf8,utf16" default:"utf16"`
	Endian string `help:"UTF-16 byte order when no BOM decides it" enum:"le,be" default:"le"`
	Out    string `short:"o" help:"Output file (default: stdout; .xz compresses)" type:"path"`
	Digest bool   `help:"Print the BLAKE3 digest of the output"`
	Report bool   `help:"Emit a JSON conversion report on stdout"`
}

// conversionReport is the JSON document emitted by convert --report.
type conversionReport struct {
	ID         string `json:"id"`
	Input      string `json:"input"`
	Output     string `json:"output,omitempty"`
	From       string `json:"from"`
	To         string `json:"to"`
	Endian     string `json:"endian"`
	InBytes    int    `json:"in_bytes"`
	OutBytes   int    `json:"out_bytes"`
	DurationMs int64  `json:"duration_ms"`
	BLAKE3     string `json:"blake3"`
}

func (c *ConvertCmd) Run() error {
	if c.From == c.To {
		return fmt.Errorf("source and target encodings are both %s", c.From)
	}

	start := time.Now()

	data, err := readInput(c.Path)
	if err != nil {
		return err
	}

	littleEndian := c.Endian != "be"

	var out []byte
	if c.From == "utf8" {
		out, err = charutil.UTF8ToUTF16(data, littleEndian)
	} else {
		out, err = charutil.UTF16ToUTF8(data, littleEndian)
	}
	if err != nil {
		return apperrors.Wrapf(err, "convert %s", c.Path)
	}

	if err := writeOutput(c.Out, out); err != nil {
		return err
	}

	sum := blake3.Sum256(out)
	digest := hex.EncodeToString(sum[:])

	logging.ConversionEvent(c.From, c.To, c.Path, len(data), len(out),
		time.Since(start), "digest", digest)

	if c.Digest {
		fmt.Printf("blake3:%s\n", digest)
	}

	if c.Report {
		report := conversionReport{
			ID:         uuid.New().String(),
			Input:      c.Path,
			Output:     c.Out,
			From:       c.From,
			To:         c.To,
			Endian:     c.Endian,
			InBytes:    len(data),
			OutBytes:   len(out),
			DurationMs: time.Since(start).Milliseconds(),
			BLAKE3:     digest,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return apperrors.Wrap(err, "encode report")
		}
	}

	return nil
}

// ValidateCmd checks that a file is well-formed UTF-8.
type ValidateCmd struct {
	Path  string `arg:"" help:"Input file (.xz is decompressed)" type:"existingfile"`
	Quiet bool   `short:"q" help:"Suppress output; report via exit status only"`
}

func (c *ValidateCmd) Run() error {
	data, err := readInput(c.Path)
	if err != nil {
		return err
	}

	valid := charutil.IsUTF8Valid(data)
	logging.ValidationEvent(c.Path, len(data), valid)

	if !valid {
		if !c.Quiet {
			fmt.Printf("%s: invalid UTF-8\n", c.Path)
		}
		return fmt.Errorf("%s is not well-formed UTF-8", c.Path)
	}
	if !c.Quiet {
		fmt.Printf("%s: valid UTF-8 (%d bytes)\n", c.Path, len(data))
	}
	return nil
}

// DetectCmd reports the byte order of a UTF-16 file.
type DetectCmd struct {
	Path string `arg:"" help:"Input file (.xz is decompressed)" type:"existingfile"`
}

func (c *DetectCmd) Run() error {
	data, err := readInput(c.Path)
	if err != nil {
		return err
	}

	if e, ok := charutil.DetectBOM(data); ok {
		fmt.Printf("%s: %s (byte order mark present)\n", c.Path, e)
		return nil
	}
	fmt.Printf("%s: no byte order mark\n", c.Path)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("charconv %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("charconv"),
		kong.Description("UTF-8 / UTF-16 transcoding and validation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := logging.LevelInfo
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
