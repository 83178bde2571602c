package shell

const helpText = `
File System Simulator Commands:

Navigation:
  ls [path]         - List directory contents
  cd <path>         - Change directory (use '..' for parent, '/' for root)
  pwd               - Print current directory path

File Operations:
  mkdir <name>      - Create a new directory
  touch <name>      - Create a new file
  rm <name>         - Remove file or empty directory
  rm -r <name>      - Remove directory recursively
  mv <src> <dest>   - Move file or directory

Display:
  tree [depth]      - Show directory tree structure
  help              - Show this help message
  clear             - Clear the screen

System:
  exit/quit         - Exit the simulator

Examples:
  mkdir documents
  cd documents
  touch readme.txt
  ls
  tree
  cd ..
  rm -r documents
`
