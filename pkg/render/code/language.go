package code

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// DefaultLanguageID is used for unknown language ids.
const DefaultLanguageID = "javascript"

// Language is a supported snippet language. Label doubles as the chroma lexer
// name.
type Language struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Sample string `json:"defaultCode"`
}

var languages = []Language{
	{"javascript", "JavaScript", "function greet(name) {\n  return `Hello, ${name}!`;\n}\n\n" +
		"const message = greet('World');\nconsole.log(message);"},
	{"typescript", "TypeScript", "interface User {\n  name: string;\n  age: number;\n}\n\n" +
		"function greet(user: User): string {\n  return `Hello, ${user.name}!`;\n}\n\n" +
		"const user: User = { name: 'World', age: 25 };\nconsole.log(greet(user));"},
	{"python", "Python", `def greet(name: str) -> str:
    return f"Hello, {name}!"

if __name__ == "__main__":
    message = greet("World")
    print(message)`},
	{"java", "Java", `public class HelloWorld {
    public static void main(String[] args) {
        String name = "World";
        System.out.println(greet(name));
    }

    public static String greet(String name) {
        return "Hello, " + name + "!";
    }
}`},
	{"cpp", "C++", `#include <iostream>
#include <string>

std::string greet(const std::string& name) {
    return "Hello, " + name + "!";
}

int main() {
    std::string message = greet("World");
    std::cout << message << std::endl;
    return 0;
}`},
	{"go", "Go", `package main

import "fmt"

func greet(name string) string {
    return fmt.Sprintf("Hello, %s!", name)
}

func main() {
    message := greet("World")
    fmt.Println(message)
}`},
	{"rust", "Rust", `fn greet(name: &str) -> String {
    format!("Hello, {}!", name)
}

fn main() {
    let message = greet("World");
    println!("{}", message);
}`},
	{"html", "HTML", `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Hello World</title>
</head>
<body>
    <h1>Hello, World!</h1>
    <p>Welcome to my page.</p>
</body>
</html>`},
	{"css", "CSS", `.container {
    display: flex;
    justify-content: center;
    align-items: center;
    min-height: 100vh;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
}

.card {
    padding: 2rem;
    border-radius: 1rem;
    background: white;
    box-shadow: 0 10px 40px rgba(0, 0, 0, 0.2);
}`},
}

// Languages returns every language in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LookupLanguage returns the language with the given id.
func LookupLanguage(id string) (Language, bool) {
	for _, l := range languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageOrDefault is LookupLanguage falling back to JavaScript.
func LanguageOrDefault(id string) Language {
	if l, ok := LookupLanguage(id); ok {
		return l
	}
	l, _ := LookupLanguage(DefaultLanguageID)
	return l
}

// ValidateLanguage returns an error naming the valid languages when id is
// not one.
func ValidateLanguage(id string) error {
	if _, ok := LookupLanguage(id); ok {
		return nil
	}
	ids := make([]string, len(languages))
	for i, l := range languages {
		ids[i] = l.ID
	}
	return fmt.Errorf("invalid language: %q (must be one of: %s)", id, strings.Join(ids, ", "))
}

// DetectLanguage guesses the language of a file from its name. It reports
// false when chroma has no lexer for the name or the lexer is not one of the
// supported languages.
func DetectLanguage(filename string) (Language, bool) {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return Language{}, false
	}
	name := lexer.Config().Name
	for _, l := range languages {
		if strings.EqualFold(l.Label, name) {
			return l, true
		}
	}
	return Language{}, false
}
