// Package entity defines the core business entities for the domain layer.
package entity

// Category is a static catalog entry grouping transaction sub-categories
// under a main category. The catalog is immutable reference data; it is not
// persisted per instance.
type Category struct {
	ID    string
	Name  string
	Items []string
}

// IncomeCategories is the fixed income category catalog.
var IncomeCategories = []Category{
	{
		ID:   "IN_OPS",
		Name: "Pemasukan Operasional",
		Items: []string{
			"Penjualan produk", "Penjualan jasa", "Pendapatan layanan",
			"Fee / komisi", "Honor kegiatan", "Uang pendaftaran",
			"Iuran anggota", "SPP / kontribusi rutin",
		},
	},
	{
		ID:   "IN_NON_OPS",
		Name: "Pemasukan Non-Operasional",
		Items: []string{
			"Donasi / sumbangan", "Hibah", "Wakaf",
			"Bantuan pemerintah", "Bantuan CSR", "Sponsor kegiatan",
		},
	},
	{
		ID:   "IN_FIN",
		Name: "Pemasukan Keuangan",
		Items: []string{
			"Bunga bank", "Bagi hasil", "Investasi",
			"Cashback / reward", "Selisih kurs",
		},
	},
	{
		ID:   "IN_OTHER",
		Name: "Pemasukan Lainnya",
		Items: []string{
			"Penjualan aset", "Pengembalian dana",
			"Denda masuk", "Pendapatan tak terduga",
		},
	},
}

// ExpenseCategories is the fixed expense category catalog.
var ExpenseCategories = []Category{
	{
		ID:   "EX_OPS_RUTIN",
		Name: "Biaya Operasional Rutin",
		Items: []string{
			"Gaji karyawan", "Honor pengajar / narasumber", "Tunjangan",
			"Listrik", "Air", "Internet", "Telepon", "ATK", "Konsumsi",
			"Transportasi", "BBM",
		},
	},
	{
		ID:   "EX_ADM",
		Name: "Biaya Administrasi",
		Items: []string{
			"Biaya bank", "Materai", "Fotokopi & cetak",
			"Pengiriman / kurir", "Perizinan", "Pajak", "Legalitas dokumen",
		},
	},
	{
		ID:   "EX_PROG",
		Name: "Biaya Program / Kegiatan",
		Items: []string{
			"Biaya event", "Seminar / kajian", "Pelatihan",
			"Publikasi", "Media & dokumentasi", "Perlengkapan kegiatan",
		},
	},
	{
		ID:   "EX_ASSET",
		Name: "Biaya Aset & Peralatan",
		Items: []string{
			"Pembelian peralatan", "Pembelian inventaris",
			"Perbaikan alat", "Maintenance", "Sewa alat",
		},
	},
	{
		ID:   "EX_BUILDING",
		Name: "Biaya Gedung & Fasilitas",
		Items: []string{
			"Sewa kantor", "Renovasi", "Kebersihan", "Keamanan", "Perawatan gedung",
		},
	},
	{
		ID:   "EX_SOCIAL",
		Name: "Biaya Sosial",
		Items: []string{
			"Santunan", "Bantuan sosial", "Beasiswa",
			"Zakat / infak disalurkan", "Program kemanusiaan",
		},
	},
	{
		ID:   "EX_OTHER",
		Name: "Biaya Lain-lain",
		Items: []string{
			"Pengeluaran darurat", "Denda", "Selisih kas", "Biaya tak terduga",
		},
	},
}

// CategoriesForType returns the catalog for the given transaction type.
func CategoriesForType(transactionType TransactionType) []Category {
	if transactionType == TransactionTypeExpense {
		return ExpenseCategories
	}
	return IncomeCategories
}
