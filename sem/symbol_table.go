package sem

import (
	"errors"
	"fmt"
	"io"

	"amplc/hashtab"
)

var (
	ErrMultipleDefinition = errors.New("name already defined in scope")
	ErrNoScope            = errors.New("no scope is open")
)

// scope is a single level of the symbol table: the program scope or the local
// scope of a subroutine.
type scope struct {
	// name is the program or subroutine that owns the scope.
	name string

	table *hashtab.Table[string, *IDProperties]
}

// SymbolTable maps names to their properties while a program is parsed.  The
// scopes form a stack: the program scope at the bottom and the scope of the
// subroutine being parsed on top.  Names are declared in the innermost scope
// only.  Looking a name up searches the innermost scope first; enclosing scopes
// contribute only their subroutine names, so the local variables of an
// enclosing scope stay invisible.
type SymbolTable struct {
	// scopes is the stack of open scopes, innermost last.
	scopes []*scope

	// offset is the next free frame slot of the innermost scope.
	offset uint

	// loadFactor is the maximum load factor of every scope table.
	loadFactor float64

	// dump receives a listing of each scope just before it is destroyed.  It
	// is nil unless listings were requested.
	dump io.Writer
}

// NewSymbolTable creates a symbol table with the program scope open.
func NewSymbolTable(loadFactor float64) (*SymbolTable, error) {
	st := &SymbolTable{loadFactor: loadFactor}

	if err := st.pushScope("program"); err != nil {
		return nil, fmt.Errorf("symbol table could not be initialised: %w", err)
	}

	return st, nil
}

// SetDump makes the table write each scope to w before it is destroyed.
func (st *SymbolTable) SetDump(w io.Writer) {
	st.dump = w
}

// -----------------------------------------------------------------------------

// OpenSubroutine declares a subroutine in the current scope, which keeps its
// name visible to itself and to every subroutine declared after it, and then
// opens a fresh local scope for its parameters and variables.
func (st *SymbolTable) OpenSubroutine(name string, props *IDProperties) error {
	if err := st.InsertName(name, props); err != nil {
		return err
	}

	return st.pushScope(name)
}

// CloseSubroutine destroys the innermost scope and everything declared in it,
// reactivating the enclosing scope.
func (st *SymbolTable) CloseSubroutine() {
	if len(st.scopes) > 0 {
		st.popScope()
	}

	st.offset = 1
}

// InsertName declares a name in the innermost scope.  A variable without a
// frame slot is given the next free slot.
func (st *SymbolTable) InsertName(name string, props *IDProperties) error {
	sc := st.innermost()
	if sc == nil {
		return ErrNoScope
	}

	if err := sc.table.Insert(name, props); err != nil {
		if errors.Is(err, hashtab.ErrKeyExists) {
			return fmt.Errorf("%w: %s", ErrMultipleDefinition, name)
		}

		return err
	}

	if props.Type.IsVariable() && props.Offset == 0 {
		props.Offset = st.offset
		st.offset++
	}

	return nil
}

// FindName looks up a name.  Names in enclosing scopes are only found if they
// denote subroutines.
func (st *SymbolTable) FindName(name string) (*IDProperties, bool) {
	for i := len(st.scopes) - 1; i > -1; i-- {
		props, ok := st.scopes[i].table.Search(name)
		if !ok {
			continue
		}

		if i == len(st.scopes)-1 || props.Type.IsCallable() {
			return props, true
		}

		return nil, false
	}

	return nil, false
}

// VariablesWidth returns one past the highest frame slot assigned in the
// innermost scope: the number of slots its frame needs, counting slot zero.
func (st *SymbolTable) VariablesWidth() uint {
	return st.offset
}

// Depth returns the number of open scopes.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// Release destroys every remaining scope.  It is called once, at the end of
// compilation.
func (st *SymbolTable) Release() {
	for len(st.scopes) > 0 {
		st.popScope()
	}
}

// -----------------------------------------------------------------------------

// Print writes the innermost scope to w bucket by bucket.
func (st *SymbolTable) Print(w io.Writer) {
	if sc := st.innermost(); sc != nil {
		printScope(w, sc)
	}
}

func printScope(w io.Writer, sc *scope) {
	fmt.Fprintf(w, "scope %s:\n", sc.name)
	sc.table.Print(w, func(name string, props *IDProperties) string {
		return name + "@" + props.String()
	})
}

// -----------------------------------------------------------------------------

// innermost returns the innermost open scope or nil.
func (st *SymbolTable) innermost() *scope {
	if len(st.scopes) == 0 {
		return nil
	}

	return st.scopes[len(st.scopes)-1]
}

// pushScope opens a new innermost scope and resets the frame slots.
func (st *SymbolTable) pushScope(name string) error {
	table, err := hashtab.New[string, *IDProperties](st.loadFactor, shiftHash, compareNames)
	if err != nil {
		return err
	}

	st.scopes = append(st.scopes, &scope{name: name, table: table})
	st.offset = 1
	return nil
}

// popScope destroys the innermost scope.
func (st *SymbolTable) popScope() {
	sc := st.scopes[len(st.scopes)-1]
	st.scopes = st.scopes[:len(st.scopes)-1]

	if st.dump != nil {
		printScope(st.dump, sc)
	}

	sc.table.Free(nil, releaseProperties)
}
