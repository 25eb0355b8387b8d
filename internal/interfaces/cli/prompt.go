// Package cli implementa el front end de menú numerado sobre stdin/stdout.
// Es puro pegamento: lee, llama a la sesión y muestra; toda la validación de
// negocio vive en la capa de aplicación.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter lee valores de a uno desde la entrada, al estilo pregunta-respuesta.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(line string) {
	fmt.Fprintln(p.out, line)
}

// readLine muestra el prompt y devuelve la línea sin espacios a los costados.
// io.EOF cuando la entrada se termina (el loop del menú sale limpio).
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// readInt lee un entero; devuelve errNotANumber si la entrada no parsea.
func (p *prompter) readInt(prompt string) (int64, error) {
	raw, err := p.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errNotANumber
	}
	return n, nil
}

// readIntDefault lee un entero con default cuando la entrada está vacía o no
// parsea (comportamiento del umbral de stock bajo).
func (p *prompter) readIntDefault(prompt string, def int64) (int64, error) {
	raw, err := p.readLine(prompt)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def, nil
	}
	return n, nil
}

var errNotANumber = fmt.Errorf("la entrada debe ser un número")
