// Package spriteanim implements the frame-based sprite animation engine: a
// named set of frame sequences sharing one texture atlas, and a transient
// cursor that advances through a sequence's frames by wall-clock delta
// time, looping or stopping at the last frame as authored.
package spriteanim
