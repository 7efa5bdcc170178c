package xssclassify

// tagBlacklist is the set of tag names (uppercased) that are always
// treated as dangerous regardless of attributes. Names beginning with
// "SVG" or "XSL" are handled separately since they match by prefix.
var tagBlacklist = map[string]bool{
	"APPLET":   true,
	"BASE":     true,
	"COMMENT":  true,
	"EMBED":    true,
	"FRAME":    true,
	"FRAMESET": true,
	"HANDLER":  true,
	"IFRAME":   true,
	"IMPORT":   true,
	"ISINDEX":  true,
	"LINK":     true,
	"LISTENER": true,
	"META":     true,
	"NOSCRIPT": true,
	"OBJECT":   true,
	"SCRIPT":   true,
	"STYLE":    true,
	"VMLFRAME": true,
	"XML":      true,
	"XSS":      true,
}

// attrURLNames take the ATTR_URL class: their value is passed through
// the URL check.
var attrURLNames = map[string]bool{
	"ACTION":     true,
	"BY":         true,
	"BACKGROUND": true,
	"DYNSRC":     true,
	"FORMACTION": true,
	"FOLDER":     true,
	"FROM":       true,
	"HANDLER":    true,
	"HREF":       true,
	"LOWSRC":     true,
	"POSTER":     true,
	"SRC":        true,
	"TO":         true,
	"VALUES":     true,
	"XLINK:HREF": true,
}

// attrBlackNames take the BLACK class: any value is an attack.
var attrBlackNames = map[string]bool{
	"DATAFORMATAS": true,
	"DATASRC":      true,
}

// attrStyleNames take the STYLE class: any value is an attack.
var attrStyleNames = map[string]bool{
	"FILTER": true,
	"STYLE":  true,
}

// eventHandlerNames is the remainder of an attribute name starting
// with "on" (the "on" itself stripped) that marks it as an event
// handler attribute, taking the BLACK class.
var eventHandlerNames = map[string]bool{
	"ABORT": true, "AFTERPRINT": true, "AFTERSCRIPTEXECUTE": true,
	"ANIMATIONCANCEL": true, "ANIMATIONEND": true, "ANIMATIONITERATION": true, "ANIMATIONSTART": true,
	"AUXCLICK": true, "BEFORECOPY": true, "BEFORECUT": true, "BEFOREPASTE": true,
	"BEFOREPRINT": true, "BEFORESCRIPTEXECUTE": true, "BEFOREUNLOAD": true,
	"BLUR": true, "CANPLAY": true, "CANPLAYTHROUGH": true, "CHANGE": true, "CLICK": true,
	"CLOSE": true, "COMPOSITIONEND": true, "COMPOSITIONSTART": true, "COMPOSITIONUPDATE": true,
	"CONTEXTMENU": true, "COPY": true, "CUECHANGE": true, "CUT": true, "DBLCLICK": true,
	"DRAG": true, "DRAGEND": true, "DRAGENTER": true, "DRAGLEAVE": true, "DRAGOVER": true,
	"DRAGSTART": true, "DROP": true, "DURATIONCHANGE": true, "EMPTIED": true, "ENDED": true,
	"ERROR": true, "FOCUS": true, "FULLSCREENCHANGE": true, "FULLSCREENERROR": true,
	"GOTPOINTERCAPTURE": true, "HASHCHANGE": true, "INPUT": true, "INVALID": true,
	"KEYDOWN": true, "KEYPRESS": true, "KEYUP": true, "LOAD": true, "LOADEDDATA": true,
	"LOADEDMETADATA": true, "LOADSTART": true, "LOSTPOINTERCAPTURE": true, "MESSAGE": true,
	"MOUSEDOWN": true, "MOUSEMOVE": true, "MOUSEOUT": true, "MOUSEOVER": true, "MOUSEUP": true,
	"MOUSEWHEEL": true, "OFFLINE": true, "ONLINE": true, "PAGEHIDE": true, "PAGESHOW": true,
	"PASTE": true, "PAUSE": true, "PLAY": true, "PLAYING": true, "POINTERCANCEL": true,
	"POINTERDOWN": true, "POINTERENTER": true, "POINTERLEAVE": true, "POINTERMOVE": true,
	"POINTEROUT": true, "POINTEROVER": true, "POINTERUP": true, "POPSTATE": true,
	"PROGRESS": true, "RATECHANGE": true, "RESET": true, "RESIZE": true, "SCROLL": true,
	"SEARCH": true, "SEEKED": true, "SEEKING": true, "SELECT": true, "SELECTIONCHANGE": true,
	"SELECTSTART": true, "SHOW": true, "STALLED": true, "STORAGE": true, "SUBMIT": true,
	"SUSPEND": true, "TIMEUPDATE": true, "TOGGLE": true, "TOUCHCANCEL": true, "TOUCHEND": true,
	"TOUCHMOVE": true, "TOUCHSTART": true, "TRANSITIONCANCEL": true, "TRANSITIONEND": true,
	"UNLOAD": true, "VOLUMECHANGE": true, "WAITING": true, "WHEEL": true,
}
