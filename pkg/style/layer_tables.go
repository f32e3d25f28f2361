package style

// Per-kind property allow-lists, keyed by the renderer's styling
// vocabulary. Field order in each spec is Group, Kind, Transitionable.

var backgroundLayerProps = PropertyTable{
	"visibility":         {GroupLayout, KindEnum, false},
	"background-color":   {GroupPaint, KindColor, true},
	"background-pattern": {GroupPaint, KindString, true},
	"background-opacity": {GroupPaint, KindNumber, true},
}

var fillLayerProps = PropertyTable{
	"visibility":            {GroupLayout, KindEnum, false},
	"fill-sort-key":         {GroupLayout, KindNumber, false},
	"fill-antialias":        {GroupPaint, KindBoolean, false},
	"fill-opacity":          {GroupPaint, KindNumber, true},
	"fill-color":            {GroupPaint, KindColor, true},
	"fill-outline-color":    {GroupPaint, KindColor, true},
	"fill-translate":        {GroupPaint, KindNumberList, true},
	"fill-translate-anchor": {GroupPaint, KindEnum, false},
	"fill-pattern":          {GroupPaint, KindString, true},
}

var lineLayerProps = PropertyTable{
	"visibility":            {GroupLayout, KindEnum, false},
	"line-cap":              {GroupLayout, KindEnum, false},
	"line-join":             {GroupLayout, KindEnum, false},
	"line-miter-limit":      {GroupLayout, KindNumber, false},
	"line-round-limit":      {GroupLayout, KindNumber, false},
	"line-sort-key":         {GroupLayout, KindNumber, false},
	"line-opacity":          {GroupPaint, KindNumber, true},
	"line-color":            {GroupPaint, KindColor, true},
	"line-translate":        {GroupPaint, KindNumberList, true},
	"line-translate-anchor": {GroupPaint, KindEnum, false},
	"line-width":            {GroupPaint, KindNumber, true},
	"line-gap-width":        {GroupPaint, KindNumber, true},
	"line-offset":           {GroupPaint, KindNumber, true},
	"line-blur":             {GroupPaint, KindNumber, true},
	"line-dasharray":        {GroupPaint, KindNumberList, true},
	"line-pattern":          {GroupPaint, KindString, true},
	"line-gradient":         {GroupPaint, KindColor, false},
}

var symbolLayerProps = PropertyTable{
	"visibility":                {GroupLayout, KindEnum, false},
	"symbol-placement":          {GroupLayout, KindEnum, false},
	"symbol-spacing":            {GroupLayout, KindNumber, false},
	"symbol-avoid-edges":        {GroupLayout, KindBoolean, false},
	"symbol-sort-key":           {GroupLayout, KindNumber, false},
	"symbol-z-order":            {GroupLayout, KindEnum, false},
	"icon-allow-overlap":        {GroupLayout, KindBoolean, false},
	"icon-ignore-placement":     {GroupLayout, KindBoolean, false},
	"icon-optional":             {GroupLayout, KindBoolean, false},
	"icon-rotation-alignment":   {GroupLayout, KindEnum, false},
	"icon-size":                 {GroupLayout, KindNumber, false},
	"icon-text-fit":             {GroupLayout, KindEnum, false},
	"icon-text-fit-padding":     {GroupLayout, KindNumberList, false},
	"icon-image":                {GroupLayout, KindString, false},
	"icon-rotate":               {GroupLayout, KindNumber, false},
	"icon-padding":              {GroupLayout, KindNumber, false},
	"icon-keep-upright":         {GroupLayout, KindBoolean, false},
	"icon-offset":               {GroupLayout, KindNumberList, false},
	"icon-anchor":               {GroupLayout, KindEnum, false},
	"icon-pitch-alignment":      {GroupLayout, KindEnum, false},
	"text-pitch-alignment":      {GroupLayout, KindEnum, false},
	"text-rotation-alignment":   {GroupLayout, KindEnum, false},
	"text-field":                {GroupLayout, KindString, false},
	"text-font":                 {GroupLayout, KindStringList, false},
	"text-size":                 {GroupLayout, KindNumber, false},
	"text-max-width":            {GroupLayout, KindNumber, false},
	"text-line-height":          {GroupLayout, KindNumber, false},
	"text-letter-spacing":       {GroupLayout, KindNumber, false},
	"text-justify":              {GroupLayout, KindEnum, false},
	"text-radial-offset":        {GroupLayout, KindNumber, false},
	"text-variable-anchor":      {GroupLayout, KindStringList, false},
	"text-anchor":               {GroupLayout, KindEnum, false},
	"text-max-angle":            {GroupLayout, KindNumber, false},
	"text-writing-mode":         {GroupLayout, KindStringList, false},
	"text-rotate":               {GroupLayout, KindNumber, false},
	"text-padding":              {GroupLayout, KindNumber, false},
	"text-keep-upright":         {GroupLayout, KindBoolean, false},
	"text-transform":            {GroupLayout, KindEnum, false},
	"text-offset":               {GroupLayout, KindNumberList, false},
	"text-allow-overlap":        {GroupLayout, KindBoolean, false},
	"text-ignore-placement":     {GroupLayout, KindBoolean, false},
	"text-optional":             {GroupLayout, KindBoolean, false},
	"icon-opacity":              {GroupPaint, KindNumber, true},
	"icon-color":                {GroupPaint, KindColor, true},
	"icon-halo-color":           {GroupPaint, KindColor, true},
	"icon-halo-width":           {GroupPaint, KindNumber, true},
	"icon-halo-blur":            {GroupPaint, KindNumber, true},
	"icon-translate":            {GroupPaint, KindNumberList, true},
	"icon-translate-anchor":     {GroupPaint, KindEnum, false},
	"text-opacity":              {GroupPaint, KindNumber, true},
	"text-color":                {GroupPaint, KindColor, true},
	"text-halo-color":           {GroupPaint, KindColor, true},
	"text-halo-width":           {GroupPaint, KindNumber, true},
	"text-halo-blur":            {GroupPaint, KindNumber, true},
	"text-translate":            {GroupPaint, KindNumberList, true},
	"text-translate-anchor":     {GroupPaint, KindEnum, false},
}

var circleLayerProps = PropertyTable{
	"visibility":              {GroupLayout, KindEnum, false},
	"circle-sort-key":         {GroupLayout, KindNumber, false},
	"circle-radius":           {GroupPaint, KindNumber, true},
	"circle-color":            {GroupPaint, KindColor, true},
	"circle-blur":             {GroupPaint, KindNumber, true},
	"circle-opacity":          {GroupPaint, KindNumber, true},
	"circle-translate":        {GroupPaint, KindNumberList, true},
	"circle-translate-anchor": {GroupPaint, KindEnum, false},
	"circle-pitch-scale":      {GroupPaint, KindEnum, false},
	"circle-pitch-alignment":  {GroupPaint, KindEnum, false},
	"circle-stroke-width":     {GroupPaint, KindNumber, true},
	"circle-stroke-color":     {GroupPaint, KindColor, true},
	"circle-stroke-opacity":   {GroupPaint, KindNumber, true},
}

var rasterLayerProps = PropertyTable{
	"visibility":            {GroupLayout, KindEnum, false},
	"raster-opacity":        {GroupPaint, KindNumber, true},
	"raster-hue-rotate":     {GroupPaint, KindNumber, true},
	"raster-brightness-min": {GroupPaint, KindNumber, true},
	"raster-brightness-max": {GroupPaint, KindNumber, true},
	"raster-saturation":     {GroupPaint, KindNumber, true},
	"raster-contrast":       {GroupPaint, KindNumber, true},
	"raster-resampling":     {GroupPaint, KindEnum, false},
	"raster-fade-duration":  {GroupPaint, KindNumber, false},
}

var hillshadeLayerProps = PropertyTable{
	"visibility":                       {GroupLayout, KindEnum, false},
	"hillshade-illumination-direction": {GroupPaint, KindNumber, false},
	"hillshade-illumination-anchor":    {GroupPaint, KindEnum, false},
	"hillshade-exaggeration":           {GroupPaint, KindNumber, true},
	"hillshade-shadow-color":           {GroupPaint, KindColor, true},
	"hillshade-highlight-color":        {GroupPaint, KindColor, true},
	"hillshade-accent-color":           {GroupPaint, KindColor, true},
}

var heatmapLayerProps = PropertyTable{
	"visibility":        {GroupLayout, KindEnum, false},
	"heatmap-radius":    {GroupPaint, KindNumber, true},
	"heatmap-weight":    {GroupPaint, KindNumber, false},
	"heatmap-intensity": {GroupPaint, KindNumber, true},
	"heatmap-color":     {GroupPaint, KindColor, false},
	"heatmap-opacity":   {GroupPaint, KindNumber, true},
}

var fillExtrusionLayerProps = PropertyTable{
	"visibility":                        {GroupLayout, KindEnum, false},
	"fill-extrusion-opacity":            {GroupPaint, KindNumber, true},
	"fill-extrusion-color":              {GroupPaint, KindColor, true},
	"fill-extrusion-translate":          {GroupPaint, KindNumberList, true},
	"fill-extrusion-translate-anchor":   {GroupPaint, KindEnum, false},
	"fill-extrusion-pattern":            {GroupPaint, KindString, true},
	"fill-extrusion-height":             {GroupPaint, KindNumber, true},
	"fill-extrusion-base":               {GroupPaint, KindNumber, true},
	"fill-extrusion-vertical-gradient":  {GroupPaint, KindBoolean, false},
}

var layerTables = map[LayerKind]PropertyTable{
	LayerBackground:    backgroundLayerProps,
	LayerFill:          fillLayerProps,
	LayerLine:          lineLayerProps,
	LayerSymbol:        symbolLayerProps,
	LayerCircle:        circleLayerProps,
	LayerRaster:        rasterLayerProps,
	LayerHillshade:     hillshadeLayerProps,
	LayerHeatmap:       heatmapLayerProps,
	LayerFillExtrusion: fillExtrusionLayerProps,
}
