package view

// option is one entry of a select box.
type option struct {
	Value string
	Label string
}

var genderOptions = []option{{"male", "Male"}, {"female", "Female"}, {"other", "Other"}}

var bloodGroupOptions = []option{{"A+", "A+"}, {"A-", "A-"}, {"B+", "B+"}, {"B-", "B-"}, {"O+", "O+"}, {"O-", "O-"}, {"AB+", "AB+"}, {"AB-", "AB-"}}

var stateOptions = []option{{"telangana", "Telangana"}}

var districtOptions = []option{
	{"adilabad", "Adilabad"}, {"bhadradri-kothagudem", "Bhadradri Kothagudem"},
	{"hanamkonda", "Hanamkonda"}, {"hyderabad", "Hyderabad"}, {"jagtial", "Jagtial"},
	{"jangaon", "Jangaon"}, {"jayashankar-bhupalpally", "Jayashankar Bhupalpally"},
	{"jogulamba-gadwal", "Jogulamba Gadwal"}, {"kamareddy", "Kamareddy"},
	{"karimnagar", "Karimnagar"}, {"khammam", "Khammam"},
	{"komaram-bheem-asifabad", "Komaram Bheem Asifabad"}, {"mahabubabad", "Mahabubabad"},
	{"mahabubnagar", "Mahabubnagar"}, {"mancherial", "Mancherial"}, {"medak", "Medak"},
	{"medchal-malkajgiri", "Medchal Malkajgiri"}, {"mulugu", "Mulugu"},
	{"nagarkurnool", "Nagarkurnool"}, {"nalgonda", "Nalgonda"}, {"narayanpet", "Narayanpet"},
	{"nirmal", "Nirmal"}, {"nizamabad", "Nizamabad"}, {"peddapalli", "Peddapalli"},
	{"rajanna-sircilla", "Rajanna Sircilla"}, {"rangareddy", "Ranga Reddy"},
	{"sangareddy", "Sangareddy"}, {"siddipet", "Siddipet"}, {"suryapet", "Suryapet"},
	{"vikarabad", "Vikarabad"}, {"wanaparthy", "Wanaparthy"}, {"warangal", "Warangal"},
	{"yadadri-bhuvanagiri", "Yadadri Bhuvanagiri"},
}

var ulbOptions = []option{
	{"hyderabad-municipal", "Greater Hyderabad Municipal Corporation"},
	{"warangal-municipal", "Greater Warangal Municipal Corporation"},
	{"karimnagar-municipal", "Karimnagar Municipal Corporation"},
	{"nizamabad-municipal", "Nizamabad Municipal Corporation"},
	{"khammam-municipal", "Khammam Municipal Corporation"},
	{"mahbubnagar-municipal", "Mahbubnagar Municipality"},
	{"siddipet-municipal", "Siddipet Municipality"},
	{"suryapet-municipal", "Suryapet Municipality"},
	{"jagtial-municipal", "Jagtial Municipality"},
	{"mancherial-municipal", "Mancherial Municipality"},
}

var blockOptions = []option{
	{"adilabad-mandal", "Adilabad Mandal"}, {"bella-mandal", "Bela Mandal"},
	{"balkonda-mandal", "Balkonda Mandal"}, {"karimnagar-mandal", "Karimnagar Mandal"},
	{"sarangapur-mandal", "Sarangapur Mandal"}, {"ramadugu-mandal", "Ramadugu Mandal"},
	{"warangal-mandal", "Warangal Mandal"}, {"dornakal-mandal", "Dornakal Mandal"},
	{"mulugu-mandal", "Mulugu Mandal"}, {"nizamabad-mandal", "Nizamabad Mandal"},
	{"bodhan-mandal", "Bodhan Mandal"}, {"banswada-mandal", "Banswada Mandal"},
}

var panchayatOptions = []option{
	{"adilabad-panchayat", "Adilabad Panchayat"}, {"cherla-panchayat", "Cherla Panchayat"},
	{"bela-panchayat", "Bela Panchayat"}, {"karimnagar-panchayat", "Karimnagar Panchayat"},
	{"sarangapur-panchayat", "Sarangapur Panchayat"}, {"ramadugu-panchayat", "Ramadugu Panchayat"},
	{"warangal-panchayat", "Warangal Panchayat"}, {"mulugu-panchayat", "Mulugu Panchayat"},
	{"dornakal-panchayat", "Dornakal Panchayat"}, {"nizamabad-panchayat", "Nizamabad Panchayat"},
	{"bodhan-panchayat", "Bodhan Panchayat"}, {"banswada-panchayat", "Banswada Panchayat"},
}

var villageOptions = []option{
	{"adilabad-village", "Adilabad Village"}, {"cherla-village", "Cherla Village"},
	{"bela-village", "Bela Village"}, {"karimnagar-village", "Karimnagar Village"},
	{"sarangapur-village", "Sarangapur Village"}, {"ramadugu-village", "Ramadugu Village"},
	{"warangal-village", "Warangal Village"}, {"mulugu-village", "Mulugu Village"},
	{"dornakal-village", "Dornakal Village"}, {"nizamabad-village", "Nizamabad Village"},
	{"bodhan-village", "Bodhan Village"}, {"banswada-village", "Banswada Village"},
}

var youthTypeOptions = []option{{"nss", "NSS"}, {"ncc", "NCC"}, {"mybharat", "MYBharat"}, {"bsg", "BSG"}, {"others", "Others"}}

var sportsOptions = []option{{"archery", "Archery"}, {"cricket", "Cricket"}, {"football", "Football"}, {"athletics", "Athletics"}}

var languageOptions = []option{{"english", "English"}, {"hindi", "Hindi"}, {"telugu", "Telugu"}}

func dayOptions() []option {
	opts := make([]option, 0, 31)
	for d := 1; d <= 31; d++ {
		v := itoa(d)
		if d < 10 {
			v = "0" + v
		}
		opts = append(opts, option{v, v})
	}
	return opts
}

func monthOptions() []option {
	opts := make([]option, 0, 12)
	for m := 1; m <= 12; m++ {
		v := itoa(m)
		if m < 10 {
			v = "0" + v
		}
		opts = append(opts, option{v, v})
	}
	return opts
}

// yearOptions lists the fifty years ending at last, newest first.
func yearOptions(last int) []option {
	opts := make([]option, 0, 50)
	for y := last; y > last-50; y-- {
		opts = append(opts, option{itoa(y), itoa(y)})
	}
	return opts
}
