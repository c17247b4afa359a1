package domain

// ReporteMensual es la vista derivada mes → contadores etiquetados por
// producto ("Entrada: <nombre>" / "Salida: <nombre>"). Se recalcula completo
// en cada request; no se persiste y el orden de los meses no está
// garantizado.
type ReporteMensual map[string]map[string]int

// TotalesMes son los contadores agregados del resumen mensual histórico.
type TotalesMes struct {
	Entradas int `json:"entradas"`
	Salidas  int `json:"salidas"`
	Neto     int `json:"neto"`
}

// ResumenMensual es la forma alternativa del reporte: totales por mes sin
// desglose por producto. Nunca se mezcla con ReporteMensual en una misma
// respuesta.
type ResumenMensual map[string]*TotalesMes
