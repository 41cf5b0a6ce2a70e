package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gemtext/lexer"
	"gemtext/token"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

var kindStyles = map[token.Kind]lipgloss.Style{
	token.Invalid:         lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F56", Dark: "#FF6B6B"}).Bold(true),
	token.Head:            lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7C79FF"}).Bold(true),
	token.Link:            lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02D98E"}),
	token.Quote:           lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#F780FF"}),
	token.ListItem:        lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFA500"}),
	token.PreformatToggle: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFA500"}).Bold(true),
	token.EOF:             lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}),
}

var plainStyle = lipgloss.NewStyle()

func styleFor(k token.Kind) lipgloss.Style {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return plainStyle
}

// dump tokenizes src and writes one line per token: the kind name and the
// quoted raw slice.
func dump(w io.Writer, src []byte, plain bool) {
	l := lexer.New(src)
	for {
		t := l.Next()
		if plain {
			fmt.Fprintln(w, t.Dump(src))
		} else {
			fmt.Fprintf(w, "%s %q\n", styleFor(t.Kind).Render(t.Kind.String()), t.Bytes(src))
		}
		if t.Kind == token.EOF {
			return
		}
	}
}

func main() {
	log.SetFlags(0)
	plain := flag.Bool("plain", false, "print tokens without styling")
	flag.Parse()

	if flag.NArg() == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		dump(os.Stdout, src, *plain)
		return
	}

	// independent lexers over independent buffers are parallel-safe, so
	// each file is tokenized on its own goroutine; output stays in
	// argument order
	outs := make([]bytes.Buffer, flag.NArg())
	var g errgroup.Group
	for i, path := range flag.Args() {
		i, path := i, path
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if flag.NArg() > 1 {
				fmt.Fprintf(&outs[i], "%s:\n", path)
			}
			dump(&outs[i], src, *plain)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	for i := range outs {
		if _, err := outs[i].WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}
