// Command huff compresses and decompresses files with the static
// Huffman codec. Output is written to a temporary sibling file and
// renamed into place on success, so a failed run never leaves behind a
// plausible-looking result.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	huff "github.com/Awoodwhale/huff-compressor"
)

func main() {
	root := &cobra.Command{
		Use:           "huff",
		Short:         "Static Huffman file compressor",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(compressCmd(), decompressCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func compressCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:     "compress <input> <output>",
		Aliases: []string{"c"},
		Short:   "Compress a file",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compressFile(args[0], args[1], quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress and size report")
	return cmd
}

func decompressCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:     "decompress <input> <output>",
		Aliases: []string{"d"},
		Short:   "Decompress a file",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decompressFile(args[0], args[1], quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	return cmd
}

func compressFile(src, dst string, quiet bool) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	var cfg huff.WriterConfig
	if !quiet {
		bar := progressbar.DefaultBytes(int64(len(data)), "compressing")
		cfg.Progress = func(processed, total int64) {
			_ = bar.Set64(processed)
		}
		defer bar.Finish()
	}

	size, err := writeAtomic(dst, func(w io.Writer) error {
		hw, err := cfg.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err = hw.Write(data); err != nil {
			return err
		}
		return hw.Close()
	})
	if err != nil {
		return fmt.Errorf("compress %s: %w", src, err)
	}
	if !quiet {
		fmt.Printf("before: %d bytes\nafter:  %d bytes\n", len(data), size)
	}
	return nil
}

func decompressFile(src, dst string, quiet bool) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var cfg huff.ReaderConfig
	if !quiet {
		bar := progressbar.DefaultBytes(-1, "decompressing")
		cfg.Progress = func(decoded int64) {
			_ = bar.Set64(decoded)
		}
		defer bar.Finish()
	}

	_, err = writeAtomic(dst, func(w io.Writer) error {
		hr, err := cfg.NewReader(bufio.NewReader(f))
		if err != nil {
			return err
		}
		_, err = io.Copy(w, hr)
		return err
	})
	if err != nil {
		return fmt.Errorf("decompress %s: %w", src, err)
	}
	return nil
}

// writeAtomic streams fn's output into a temporary file next to path
// and renames it into place only when fn and all flushes succeed.
// Returns the number of bytes written.
func writeAtomic(path string, fn func(io.Writer) error) (int64, error) {
	dir, base := filepath.Split(path)
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return 0, err
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := fn(bw); err != nil {
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	info, err := tmp.Stat()
	if err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	tmp = nil
	return info.Size(), nil
}
