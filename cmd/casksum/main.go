package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/casknet/cask/contenthash"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error parsing command-line arguments: %s", err))
	}

	if cfg.VerifyHex != "" {
		verify(cfg)
		return
	}

	if len(cfg.Files) == 0 {
		hash := hashReaderOrExit(os.Stdin, "-")
		printHash(cfg, hash, "-")
		return
	}

	for _, file := range cfg.Files {
		hash := hashFileOrExit(file)
		printHash(cfg, hash, file)
	}
}

func verify(cfg *configFlags) {
	expected, err := contenthash.FromString(cfg.VerifyHex)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error parsing the expected hash: %s", err))
	}

	var actual *contenthash.Hash
	name := "-"
	if len(cfg.Files) == 1 {
		name = cfg.Files[0]
		actual = hashFileOrExit(name)
	} else {
		actual = hashReaderOrExit(os.Stdin, name)
	}

	if !actual.Equal(expected) {
		printErrorAndExit(fmt.Sprintf("%s: hash mismatch: got %s, expected %s",
			name, actual, expected))
	}
	fmt.Printf("%s: OK\n", name)
}

func printHash(cfg *configFlags, hash *contenthash.Hash, name string) {
	if cfg.Short {
		fmt.Printf("%s  %s\n", hash.ShortString(), name)
		return
	}
	fmt.Printf("%s  %s\n", hash, name)
}

func hashFileOrExit(file string) *contenthash.Hash {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error reading %s: %s", file, err))
	}
	return digestOrExit(data, file)
}

func hashReaderOrExit(reader *os.File, name string) *contenthash.Hash {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error reading %s: %s", name, err))
	}
	return digestOrExit(data, name)
}

func digestOrExit(data []byte, name string) *contenthash.Hash {
	hash, err := contenthash.Digest(data)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error hashing %s: %s", name, err))
	}
	return hash
}

func printErrorAndExit(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(1)
}
