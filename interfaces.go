package fssim

// NoDepthLimit passed to [FileSystemOperator.Tree] renders the whole subtree
const NoDepthLimit = -1

// FileSystemOperator defines the user-facing operations the shell dispatches to.
//
// Each operation returns a human-readable result on success. Expected failures
// are returned as *[OpError] values whose Error() is the message to show.
type FileSystemOperator interface {
	// Ls lists the directory at path; "" lists the current directory
	Ls(path string) (string, error)

	// Pwd returns the absolute path of the current directory
	Pwd() string

	// Mkdir creates a directory in the current directory
	Mkdir(name string) (string, error)

	// Touch creates a file in the current directory
	Touch(name string) (string, error)

	// Cd changes the current directory
	Cd(path string) (string, error)

	// Rm removes a direct child of the current directory
	Rm(name string, recursive bool) (string, error)

	// Mv moves a direct child of the current directory into the directory at dest
	Mv(src, dest string) (string, error)

	// Tree renders the current directory's subtree down to maxDepth levels.
	// Use [NoDepthLimit] to render everything.
	Tree(maxDepth int) string
}
