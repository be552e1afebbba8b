package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/seaglass-games/ronet/packet"
	"github.com/seaglass-games/ronet/protocol"
	"github.com/seaglass-games/ronet/wire"
)

func main() {
	var (
		captureFile = flag.String("capture", "", "Path to a raw packet capture file")
		hexStream   = flag.String("hex", "", "Inline hex packet stream (spaces allowed)")
		list        = flag.Bool("list", false, "List known packet tags and exit")
		pings       = flag.Bool("pings", false, "Include keepalive packets in the output")
		debug       = flag.Bool("debug", false, "Log unrecognized headers to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	registry := protocol.NewRegistry()

	if *list {
		listTags(registry)
		return
	}

	if *captureFile == "" && *hexStream == "" {
		fmt.Fprintln(os.Stderr, "Usage: rowatch -capture <file> [-pings] [-i]")
		fmt.Fprintln(os.Stderr, "       rowatch -hex '8e00 0a00 77656c636f6d'")
		fmt.Fprintln(os.Stderr, "       rowatch -list")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		packet.SetLogger(logger)
	}

	data, err := readStream(*captureFile, *hexStream)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(registry, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(registry, data, *pings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readStream(captureFile, hexStream string) ([]byte, error) {
	if captureFile != "" {
		data, err := os.ReadFile(captureFile)
		if err != nil {
			return nil, fmt.Errorf("read capture: %w", err)
		}
		return data, nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, hexStream)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parse hex stream: %w", err)
	}
	return data, nil
}

func listTags(registry *packet.Registry) {
	for _, e := range registry.Entries() {
		ping := ""
		if e.Ping {
			ping = "  (keepalive)"
		}
		fmt.Printf("0x%04X  %s%s\n", e.Tag, e.GoType.Name(), ping)
	}
}

func dump(registry *packet.Registry, data []byte, pings bool) error {
	cur := wire.NewCursor(data)
	n := 0
	for cur.Remaining() > 0 {
		offset := cur.Position()
		decoded, err := registry.DecodeNext(cur)
		if err != nil {
			return fmt.Errorf("packet %d at offset %d: %w", n, offset, err)
		}
		n++

		if !pings && registry.IsPing(decoded) {
			continue
		}

		if unknown, ok := decoded.(*packet.Unknown); ok {
			fmt.Printf("[%04d] 0x%04X  unknown, %d trailing bytes\n",
				n-1, unknown.Tag, len(unknown.Payload))
			continue
		}

		tag, _ := registry.Tag(decoded)
		fmt.Printf("[%04d] 0x%04X  %s\n", n-1, tag, typeName(decoded))
		for _, line := range fieldLines(decoded) {
			fmt.Printf("         %s\n", line)
		}
	}
	return nil
}

func typeName(pkt any) string {
	t := reflect.TypeOf(pkt)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// fieldLines renders the exported fields of a decoded packet, one per
// line, for display.
func fieldLines(pkt any) []string {
	v := reflect.ValueOf(pkt)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return []string{fmt.Sprintf("%v", pkt)}
	}

	var lines []string
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s = %s", f.Name, formatValue(v.Field(i))))
	}
	return lines
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	case reflect.Slice:
		if v.Len() > 8 {
			return fmt.Sprintf("%d elements", v.Len())
		}
		return fmt.Sprintf("%v", v.Interface())
	case reflect.Array:
		// Padding and reserved regions are noise when zero.
		if v.Type().Elem().Kind() == reflect.Uint8 && v.IsZero() {
			return fmt.Sprintf("[%d]byte zero", v.Len())
		}
		return fmt.Sprintf("%v", v.Interface())
	default:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", v.Interface())
	}
}
