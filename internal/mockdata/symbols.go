package mockdata

// Symbol holds metadata for one instrument in the simulated universe.
type Symbol struct {
	Ticker     string
	Name       string
	Sector     string
	BasePrice  float64
	Volatility float64
	IsETF      bool
}

// Universe returns the fixed simulated universe: a spread of sectors plus the
// ETF set the grid page renders. Order is stable; generators key off ticker.
func Universe() []Symbol {
	return []Symbol{
		// Large caps across sectors - mid volatility
		{Ticker: "NVAX", Name: "Novarix Semiconductors", Sector: "Technology", BasePrice: 212.00, Volatility: 1.5},
		{Ticker: "QNTM", Name: "Quantum Compute Corp", Sector: "Technology", BasePrice: 96.50, Volatility: 1.7},
		{Ticker: "HELIX", Name: "Helix Biotherapeutics", Sector: "Healthcare", BasePrice: 148.25, Volatility: 0.9},
		{Ticker: "CRWN", Name: "Crown Financial Group", Sector: "Financials", BasePrice: 74.00, Volatility: 0.7},
		{Ticker: "VLTA", Name: "Volta Grid Energy", Sector: "Energy", BasePrice: 58.75, Volatility: 1.2},
		{Ticker: "LMNR", Name: "Luminar Retail Inc", Sector: "Consumer", BasePrice: 123.00, Volatility: 0.8},
		{Ticker: "FORJ", Name: "Forge Industrial Works", Sector: "Industrials", BasePrice: 89.50, Volatility: 1.0},
		{Ticker: "AERO", Name: "Aerodyne Systems", Sector: "Industrials", BasePrice: 176.00, Volatility: 1.1},
		{Ticker: "PULSE", Name: "Pulse Diagnostics", Sector: "Healthcare", BasePrice: 64.25, Volatility: 0.8},
		{Ticker: "HUNT", Name: "Hunt Capital Holdings", Sector: "Financials", BasePrice: 105.00, Volatility: 1.0},

		// Sector/style ETFs - lower volatility, grid page rows
		{Ticker: "WTEC", Name: "WRDO Technology ETF", Sector: "Technology", BasePrice: 310.00, Volatility: 0.6, IsETF: true},
		{Ticker: "WFIN", Name: "WRDO Financials ETF", Sector: "Financials", BasePrice: 142.00, Volatility: 0.5, IsETF: true},
		{Ticker: "WHLC", Name: "WRDO Healthcare ETF", Sector: "Healthcare", BasePrice: 188.50, Volatility: 0.4, IsETF: true},
		{Ticker: "WNRG", Name: "WRDO Energy ETF", Sector: "Energy", BasePrice: 97.25, Volatility: 0.8, IsETF: true},
		{Ticker: "WCON", Name: "WRDO Consumer ETF", Sector: "Consumer", BasePrice: 156.00, Volatility: 0.5, IsETF: true},
		{Ticker: "WIND", Name: "WRDO Industrials ETF", Sector: "Industrials", BasePrice: 134.75, Volatility: 0.6, IsETF: true},
		{Ticker: "WMOM", Name: "WRDO Momentum ETF", Sector: "Style", BasePrice: 221.00, Volatility: 0.9, IsETF: true},
		{Ticker: "WVAL", Name: "WRDO Value ETF", Sector: "Style", BasePrice: 118.00, Volatility: 0.4, IsETF: true},
		{Ticker: "WGRO", Name: "WRDO Growth ETF", Sector: "Style", BasePrice: 264.50, Volatility: 0.8, IsETF: true},
		{Ticker: "WBRD", Name: "WRDO Broad Market ETF", Sector: "Broad", BasePrice: 402.00, Volatility: 0.3, IsETF: true},
	}
}

// ByTicker returns a map from ticker to symbol for quick lookups.
func ByTicker() map[string]Symbol {
	syms := Universe()
	m := make(map[string]Symbol, len(syms))
	for _, s := range syms {
		m[s.Ticker] = s
	}
	return m
}

// ETFs returns only the ETF rows of the universe.
func ETFs() []Symbol {
	var out []Symbol
	for _, s := range Universe() {
		if s.IsETF {
			out = append(out, s)
		}
	}
	return out
}
