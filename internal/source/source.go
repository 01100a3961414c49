/*
 * source.go, part of xyzmon.
 *
 * Copyright 2026 The xyzmon Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package source obtains the text to be processed by xyzmon from a file or the standard
//input. Compressed inputs are decompressed, and the common clipboard encodings
//are converted to UTF-8.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

//ErrTooLarge is returned when the input has more characters than allowed.
var ErrTooLarge = errors.New("input exceeds the character limit")

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	gzipMagic = []byte{0x1F, 0x8B}
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
	utf16LE   = []byte{0xFF, 0xFE}
	utf16BE   = []byte{0xFE, 0xFF}
)

//Read returns the text in the file path, or in the standard input if path is "-"
//or empty. Inputs with more than maxChars characters are rejected with ErrTooLarge,
//maxChars <= 0 means no limit. lg can be nil.
func Read(path string, maxChars int, lg *slog.Logger) (string, error) {
	if path == "" || path == "-" {
		return ReadFrom(os.Stdin, maxChars, lg)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	text, err := ReadFrom(f, maxChars, lg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

//ReadFrom is like Read, but takes the input from r.
func ReadFrom(r io.Reader, maxChars int, lg *slog.Logger) (string, error) {
	if lg == nil {
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(zstdMagic)) //a short input just gives a shorter slice.
	var in io.Reader = br
	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return "", fmt.Errorf("zstd input: %w", err)
		}
		defer dec.Close()
		in = dec
		lg.Debug("Input is zstd-compressed")
	case bytes.HasPrefix(magic, gzipMagic):
		dec, err := gzip.NewReader(br)
		if err != nil {
			return "", fmt.Errorf("gzip input: %w", err)
		}
		defer dec.Close()
		in = dec
		lg.Debug("Input is gzip-compressed")
	}
	if maxChars > 0 {
		//no character takes more than 4 bytes in any of the accepted encodings.
		in = io.LimitReader(in, int64(maxChars)*4+1)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	if maxChars > 0 && len(data) > maxChars*4 {
		return "", fmt.Errorf("%w (%d)", ErrTooLarge, maxChars)
	}
	text, enc, err := Decode(data)
	if err != nil {
		return "", err
	}
	lg.Debug("Read input", "bytes", len(data), "encoding", enc)
	if maxChars > 0 {
		if n := utf8.RuneCountInString(text); n > maxChars {
			return "", fmt.Errorf("%w (%d characters, %d allowed)", ErrTooLarge, n, maxChars)
		}
	}
	return text, nil
}

//Decode converts data to a UTF-8 string and returns it with the name of the encoding
//found. UTF-16 is recognized by its byte order mark. Data that is not valid
//UTF-8 is decoded as GBK if possible, and returned unchanged otherwise.
func Decode(data []byte) (string, string, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return string(data[len(utf8BOM):]), "UTF-8-BOM", nil
	case bytes.HasPrefix(data, utf16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", "", fmt.Errorf("failed to decode from UTF-16LE: %w", err)
		}
		return string(out), "UTF-16LE", nil
	case bytes.HasPrefix(data, utf16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", "", fmt.Errorf("failed to decode from UTF-16BE: %w", err)
		}
		return string(out), "UTF-16BE", nil
	case utf8.Valid(data):
		return string(data), "UTF-8", nil
	}
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil || !utf8.Valid(out) {
		return string(data), "UNKNOWN", nil
	}
	return string(out), "GBK", nil
}
