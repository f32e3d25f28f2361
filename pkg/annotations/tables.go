package annotations

import "github.com/go-drift/maplibre/pkg/style"

// Per-kind property allow-lists. Annotations expose a fixed subset of the
// corresponding layer vocabulary; keys outside the list are dropped.

var circleProps = style.PropertyTable{
	"circle-color":          {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"circle-radius":         {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"circle-blur":           {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"circle-opacity":        {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"circle-stroke-color":   {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"circle-stroke-width":   {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"circle-stroke-opacity": {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"circle-sort-key":       {Group: style.GroupLayout, Kind: style.KindNumber},
}

var lineProps = style.PropertyTable{
	"line-join":      {Group: style.GroupLayout, Kind: style.KindEnum},
	"line-sort-key":  {Group: style.GroupLayout, Kind: style.KindNumber},
	"line-opacity":   {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"line-color":     {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"line-width":     {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"line-gap-width": {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"line-offset":    {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"line-blur":      {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"line-pattern":   {Group: style.GroupPaint, Kind: style.KindString, Transitionable: true},
}

var fillProps = style.PropertyTable{
	"fill-sort-key":      {Group: style.GroupLayout, Kind: style.KindNumber},
	"fill-opacity":       {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"fill-color":         {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"fill-outline-color": {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"fill-pattern":       {Group: style.GroupPaint, Kind: style.KindString, Transitionable: true},
}

var symbolProps = style.PropertyTable{
	"symbol-sort-key":     {Group: style.GroupLayout, Kind: style.KindNumber},
	"icon-image":          {Group: style.GroupLayout, Kind: style.KindString},
	"icon-size":           {Group: style.GroupLayout, Kind: style.KindNumber},
	"icon-rotate":         {Group: style.GroupLayout, Kind: style.KindNumber},
	"icon-offset":         {Group: style.GroupLayout, Kind: style.KindNumberList},
	"icon-anchor":         {Group: style.GroupLayout, Kind: style.KindEnum},
	"text-field":          {Group: style.GroupLayout, Kind: style.KindString},
	"text-font":           {Group: style.GroupLayout, Kind: style.KindStringList},
	"text-size":           {Group: style.GroupLayout, Kind: style.KindNumber},
	"text-max-width":      {Group: style.GroupLayout, Kind: style.KindNumber},
	"text-letter-spacing": {Group: style.GroupLayout, Kind: style.KindNumber},
	"text-justify":        {Group: style.GroupLayout, Kind: style.KindEnum},
	"text-anchor":         {Group: style.GroupLayout, Kind: style.KindEnum},
	"text-rotate":         {Group: style.GroupLayout, Kind: style.KindNumber},
	"text-transform":      {Group: style.GroupLayout, Kind: style.KindEnum},
	"text-offset":         {Group: style.GroupLayout, Kind: style.KindNumberList},
	"icon-opacity":        {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"icon-color":          {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"icon-halo-color":     {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"icon-halo-width":     {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"icon-halo-blur":      {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"text-opacity":        {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"text-color":          {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"text-halo-color":     {Group: style.GroupPaint, Kind: style.KindColor, Transitionable: true},
	"text-halo-width":     {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
	"text-halo-blur":      {Group: style.GroupPaint, Kind: style.KindNumber, Transitionable: true},
}
