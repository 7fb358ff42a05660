// Copyright 2026 rvv-intrinsic-emulation Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// instruction describes one emulated mnemonic: its assembly spelling, the
// generic function it delegates to, and the addressing modes it supports.
type instruction struct {
	Mnemonic string
	Generic  string
	Modes    []string
}

// instructions is the generation table. Adding a mnemonic here and a generic
// implementation in the target package is all a new instruction needs.
var instructions = []instruction{
	{Mnemonic: "vror", Generic: "RotateRight", Modes: []string{"vv", "vx", "vi"}},
	{Mnemonic: "vrol", Generic: "RotateLeft", Modes: []string{"vv", "vx"}},
}

// widths lists the supported element widths in bits.
var widths = []int{8, 16, 32, 64}

// wrapper is one generated function, fully resolved for the template.
type wrapper struct {
	Name     string // VrorVVU32
	Mnemonic string // vror
	Mode     string // vv
	Generic  string // RotateRightVV
	ElemType string // uint32
	Scalar   string // "", "rs1" or "imm"
}

const fileTemplate = `// Code generated by rvvgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

// Per-mnemonic wrappers over the generic rotate implementations. The names
// follow the intrinsic spellings: VrorVVU32 corresponds to
// __riscv_vror_vv_u32 and so on.
{{range .Wrappers}}
// {{.Name}} emulates {{.Mnemonic}}.{{.Mode}} for {{.ElemType}} elements.
{{- if .Scalar}}
func {{.Name}}(vs2 rvv.Vec[{{.ElemType}}], {{.Scalar}} uint, vl int) rvv.Vec[{{.ElemType}}] {
	return {{.Generic}}(vs2, {{.Scalar}}, vl)
}
{{- else}}
func {{.Name}}(vs2, vs1 rvv.Vec[{{.ElemType}}], vl int) rvv.Vec[{{.ElemType}}] {
	return {{.Generic}}(vs2, vs1, vl)
}
{{- end}}
{{end}}`

// buildWrappers expands the instruction table into the flat wrapper list,
// grouped by element width the way the hand-written surface was laid out.
func buildWrappers() []wrapper {
	title := cases.Title(language.English)
	var ws []wrapper
	for _, w := range widths {
		for _, ins := range instructions {
			for _, mode := range ins.Modes {
				elem := fmt.Sprintf("uint%d", w)
				scalar := ""
				switch mode {
				case "vx":
					scalar = "rs1"
				case "vi":
					scalar = "imm"
				}
				ws = append(ws, wrapper{
					Name:     fmt.Sprintf("%s%sU%d", title.String(ins.Mnemonic), strings.ToUpper(mode), w),
					Mnemonic: ins.Mnemonic,
					Mode:     mode,
					Generic:  ins.Generic + strings.ToUpper(mode),
					ElemType: elem,
					Scalar:   scalar,
				})
			}
		}
	}
	return ws
}

// generate renders the wrapper file and runs it through goimports so the
// output is stable regardless of template whitespace.
func generate(pkg string) ([]byte, error) {
	tmpl, err := template.New("intrinsics").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Package  string
		Wrappers []wrapper
	}{Package: pkg, Wrappers: buildWrappers()})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := imports.Process("z_intrinsics.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}
