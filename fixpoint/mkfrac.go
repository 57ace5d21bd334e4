//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
	"text/template"
)

var fracTemplate = `// Code generated by mkfrac.go; DO NOT EDIT.

package fixpoint

type (
{{- range . }}
	Frac{{ . }} struct{}
{{- end }}
)
{{ range . }}
func (Frac{{ . }}) Bits() uint { return {{ . }} }
{{- end }}
`

func parseBits(s string) uint {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		log.Fatalln(err)
	}
	if n > 63 {
		log.Fatalln("no storage type holds", n, "fractional bits")
	}
	return uint(n)
}

func usage() {
	fmt.Printf("Usage: %v <minbits> <maxbits>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 3 {
		usage()
		os.Exit(1)
	}

	lo, hi := parseBits(os.Args[1]), parseBits(os.Args[2])
	if lo > hi {
		log.Fatalln("empty range:", lo, hi)
	}
	var bits []uint
	for n := lo; n <= hi; n++ {
		bits = append(bits, n)
	}

	source := bytes.NewBuffer(nil)
	tmpl, err := template.New("fracTemplate").Parse(fracTemplate)
	if err != nil {
		log.Fatalln(err)
	}
	err = tmpl.Execute(source, bits)
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile("frac_gen.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
