package config

const Version = "0.0.1.1"

const SourceFileExt = ".lspy"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".lspy", ".altlisp"}

// REPL defaults
const (
	DefaultPrompt = "altLisp> "
	BannerTitle   = "Lispy Version " + Version
	BannerHint    = "Press Ctrl+c to Exit"
)

// Built-in function names
const (
	LambdaFuncName   = "\\"
	ObjectFuncName   = "obj"
	InstanceFuncName = "instance"
	MemberFuncName   = "->"
	DefFuncName      = "def"
	PutFuncName      = "="
	ListFuncName     = "list"
	HeadFuncName     = "head"
	TailFuncName     = "tail"
	EvalFuncName     = "eval"
	JoinFuncName     = "join"
	AddFuncName      = "+"
	SubFuncName      = "-"
	MulFuncName      = "*"
	DivFuncName      = "/"
	IfFuncName       = "if"
	EqFuncName       = "=="
	NeFuncName       = "!="
	GtFuncName       = ">"
	LtFuncName       = "<"
	GeFuncName       = ">="
	LeFuncName       = "<="
	LoadFuncName     = "load"
	ErrorFuncName    = "error"
	PrintFuncName    = "print"
)

// BuiltinNames lists the builtins in the order they are installed into the
// root environment.
var BuiltinNames = []string{
	LambdaFuncName, ObjectFuncName, InstanceFuncName, MemberFuncName, DefFuncName, PutFuncName,
	ListFuncName, HeadFuncName, TailFuncName, EvalFuncName, JoinFuncName,
	AddFuncName, SubFuncName, MulFuncName, DivFuncName,
	IfFuncName, EqFuncName, NeFuncName, GtFuncName, LtFuncName, GeFuncName, LeFuncName,
	LoadFuncName, ErrorFuncName, PrintFuncName,
}
