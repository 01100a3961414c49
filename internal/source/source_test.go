/*
 * source_test.go, part of xyzmon.
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

package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	. "github.com/onsi/gomega"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

const water = "3\nwater\nO 0.000 0.000 0.117\nH 0.000 0.757 -0.467\nH 0.000 -0.757 -0.467\n"

func TestReadPlain(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "water.xyz")
	g.Expect(os.WriteFile(path, []byte(water), 0644)).To(Succeed())
	text, err := Read(path, 0, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(text).To(Equal(water))

	_, err = Read(filepath.Join(t.TempDir(), "missing.xyz"), 0, nil)
	g.Expect(err).To(HaveOccurred())
}

func TestReadCompressed(t *testing.T) {
	g := NewWithT(t)
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err := w.Write([]byte(water))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(w.Close()).To(Succeed())
	text, err := ReadFrom(&gz, 0, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(text).To(Equal(water))

	enc, err := zstd.NewWriter(nil)
	g.Expect(err).NotTo(HaveOccurred())
	compressed := enc.EncodeAll([]byte(water), nil)
	g.Expect(enc.Close()).To(Succeed())
	text, err = ReadFrom(bytes.NewReader(compressed), 0, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(text).To(Equal(water))
}

func TestDecode(t *testing.T) {
	g := NewWithT(t)
	text, enc, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, water...))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(enc).To(Equal("UTF-8-BOM"))
	g.Expect(text).To(Equal(water))

	u16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(water)
	g.Expect(err).NotTo(HaveOccurred())
	text, enc, err = Decode([]byte(u16))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(enc).To(Equal("UTF-16LE"))
	g.Expect(text).To(Equal(water))

	u16, err = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(water)
	g.Expect(err).NotTo(HaveOccurred())
	text, enc, err = Decode([]byte(u16))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(enc).To(Equal("UTF-16BE"))
	g.Expect(text).To(Equal(water))

	chinese := "1\n中文\nC 0 0 0\n"
	gbk, err := simplifiedchinese.GBK.NewEncoder().String(chinese)
	g.Expect(err).NotTo(HaveOccurred())
	text, enc, err = Decode([]byte(gbk))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(enc).To(Equal("GBK"))
	g.Expect(text).To(Equal(chinese))
}

func TestCharLimit(t *testing.T) {
	g := NewWithT(t)
	text, err := ReadFrom(bytes.NewReader([]byte("0123456789")), 10, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(text).To(HaveLen(10))

	_, err = ReadFrom(bytes.NewReader([]byte("0123456789A")), 10, nil)
	g.Expect(errors.Is(err, ErrTooLarge)).To(BeTrue())

	_, err = ReadFrom(bytes.NewReader(bytes.Repeat([]byte("x"), 1000)), 10, nil)
	g.Expect(errors.Is(err, ErrTooLarge)).To(BeTrue())

	//multibyte characters count once.
	text, err = ReadFrom(bytes.NewReader([]byte("中文中文中文中文中文")), 10, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect([]rune(text)).To(HaveLen(10))
}
