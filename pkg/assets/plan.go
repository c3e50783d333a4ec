// Package assets plans and executes the filesystem mutations gfxpack
// performs on a Dwarf Fortress folder: tileset and art tree copies,
// single-file drops and the staged replacement of whole directories.
//
// Mutations are collected into a Plan first and executed as a synthfs
// pipeline, so a dry run can show every pending change and execution
// failures surface before half the tree has been rewritten by hand.
package assets

import (
	"fmt"

	"github.com/fortresskit/gfxpack/pkg/logging"
)

var log = logging.GetLogger("assets")

// OpKind identifies a planned filesystem mutation.
type OpKind string

const (
	OpCreateDir  OpKind = "create-dir"
	OpCopyFile   OpKind = "copy-file"
	OpWriteFile  OpKind = "write-file"
	OpDeleteFile OpKind = "delete-file"
)

// Op is one planned mutation. Source is only set for copies, Content
// and Mode only for writes.
type Op struct {
	Kind        OpKind
	Source      string
	Target      string
	Content     []byte
	Mode        uint32
	Description string
}

// Plan is an ordered list of mutations. Order is significant: ops
// execute in the order they were added.
type Plan struct {
	ops []Op
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// CreateDir plans creation of a directory.
func (p *Plan) CreateDir(target string) {
	p.ops = append(p.ops, Op{
		Kind:        OpCreateDir,
		Target:      target,
		Description: fmt.Sprintf("create directory %s", target),
	})
}

// CopyFile plans a file copy.
func (p *Plan) CopyFile(source, target string) {
	p.ops = append(p.ops, Op{
		Kind:        OpCopyFile,
		Source:      source,
		Target:      target,
		Description: fmt.Sprintf("copy %s to %s", source, target),
	})
}

// WriteFile plans writing content to a new file.
func (p *Plan) WriteFile(target string, content []byte, mode uint32) {
	p.ops = append(p.ops, Op{
		Kind:        OpWriteFile,
		Target:      target,
		Content:     content,
		Mode:        mode,
		Description: fmt.Sprintf("write %s", target),
	})
}

// DeleteFile plans removal of a single file.
func (p *Plan) DeleteFile(target string) {
	p.ops = append(p.ops, Op{
		Kind:        OpDeleteFile,
		Target:      target,
		Description: fmt.Sprintf("delete %s", target),
	})
}

// Ops returns the planned mutations in execution order.
func (p *Plan) Ops() []Op {
	return p.ops
}

// Len reports the number of planned mutations.
func (p *Plan) Len() int {
	return len(p.ops)
}

// Empty reports whether the plan has no mutations.
func (p *Plan) Empty() bool {
	return len(p.ops) == 0
}
