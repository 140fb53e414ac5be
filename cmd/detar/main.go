package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/moycat/detar"
)

type command struct {
	operation   string
	archivePath string
	entryName   string
	// Decode options.
	algorithm algorithmArg
	binary    bool
	verify    bool
}

func (c *command) options() []detar.Option {
	ops := []detar.Option{
		detar.WithCompression(c.algorithm.value),
	}
	if c.binary {
		ops = append(ops, detar.WithBinaryContents())
	}
	if c.verify {
		ops = append(ops, detar.WithChecksumVerification())
	}
	return ops
}

func list(entries []detar.TarEntry) {
	for _, entry := range entries {
		h := entry.Header
		owner := fmt.Sprintf("%d/%d", h.UID, h.GID)
		if h.Ustar != nil && h.Ustar.Uname != "" {
			owner = h.Ustar.Uname + "/" + h.Ustar.Gname
		}
		modTime := time.Unix(int64(h.ModTime), 0).UTC().Format("2006-01-02 15:04")
		fmt.Printf("%-10s %-8s %-16s %10d %s %s\n",
			h.TypeFlag, h.Mode, owner, h.Size, modTime, h.FullName())
	}
}

func cat(entries []detar.TarEntry, name string) {
	for _, entry := range entries {
		if entry.Header.FullName() == name {
			_, _ = os.Stdout.Write(entry.Contents)
			return
		}
	}
	log.Fatalln("entry not found:", name)
}

func main() {
	cmd := parseArgs()
	buf, closeBuf, err := detar.MapFile(cmd.archivePath)
	if err != nil {
		log.Fatalln("failed to load archive:", err)
	}
	defer func() {
		if err := closeBuf(); err != nil {
			log.Println("failed to release archive buffer:", err)
		}
	}()
	entries, err := detar.Decode(buf, cmd.options()...)
	if err != nil {
		log.Fatalln("failed to decode archive:", err)
	}
	switch cmd.operation {
	case "list":
		list(entries)
	case "cat":
		cat(entries, cmd.entryName)
	}
}
