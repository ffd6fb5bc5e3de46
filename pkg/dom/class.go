package dom

import "strings"

func isElement(el Element) bool {
	return el != nil && el.NodeType() == ElementNode
}

// GetBoundingClientRect returns the geometry of el. The boolean result is false
// when el is not an element node.
func GetBoundingClientRect(el Element) (Rect, bool) {
	if !isElement(el) {
		return Rect{}, false
	}
	return el.GetBoundingClientRect(), true
}

// HasClass reports whether el carries className, ignoring surrounding
// whitespace in className.
func HasClass(el Element, className string) bool {
	if !isElement(el) {
		return false
	}
	return el.ClassList().Contains(strings.TrimSpace(className))
}

// AddClass appends className to el's class attribute unless already present.
func AddClass(el Element, className string) {
	if !isElement(el) {
		return
	}
	className = strings.TrimSpace(className)
	if className == "" || HasClass(el, className) {
		return
	}
	if cl := el.ClassName(); cl != "" {
		el.SetClassName(cl + " " + className)
		return
	}
	el.SetClassName(className)
}

// RemoveClass rewrites el's class attribute without className and without
// empty tokens.
func RemoveClass(el Element, className string) {
	if !isElement(el) {
		return
	}
	className = strings.TrimSpace(className)

	classes := strings.Split(strings.TrimSpace(el.ClassName()), " ")
	kept := classes[:0]
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c == "" || c == className {
			continue
		}
		kept = append(kept, c)
	}
	el.SetClassName(strings.Join(kept, " "))
}

// ToggleClass flips className on el, or sets it according to force.
func ToggleClass(el Element, className string, force ...bool) {
	if !isElement(el) {
		return
	}
	el.ClassList().Toggle(className, force...)
}

// ReplaceClass removes oldClassName and then adds newClassName.
func ReplaceClass(el Element, oldClassName, newClassName string) {
	if !isElement(el) {
		return
	}
	RemoveClass(el, strings.TrimSpace(oldClassName))
	AddClass(el, strings.TrimSpace(newClassName))
}
