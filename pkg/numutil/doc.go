// Package numutil holds numeric helpers shared by layout and gesture code.
package numutil
